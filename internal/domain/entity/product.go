package entity

import "github.com/shopspring/decimal"

// Product representa una entrada del catálogo: el código de barras del
// artículo con su nombre y precio de venta.
type Product struct {
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// StockEntry representa la existencia actual de un producto en el libro de
// inventario. Name y Price deben coincidir con la entrada del catálogo para
// el mismo código; la única vía de escritura es catalog.UseCase.Save, que
// mantiene ambos registros sincronizados.
type StockEntry struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}
