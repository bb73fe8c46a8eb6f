package dto

import "github.com/shopspring/decimal"

// SaveProductRequest alta/edición de un producto desde el formulario de setup.
// Quantity es la existencia inicial (o corregida) del libro de inventario.
type SaveProductRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ProductResponse producto del catálogo con su existencia actual; puebla el
// formulario de setup tras un escaneo o una consulta directa.
type ProductResponse struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// StockEntryResponse una fila del listado de inventario (orden del libro).
type StockEntryResponse struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// SetQuantityRequest corrección directa de existencia por el operador.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
