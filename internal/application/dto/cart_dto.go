package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega (o recupera) la línea del código indicado.
type AddCartItemRequest struct {
	Code string `json:"code"`
}

// SetCartQuantityRequest edición explícita de la cantidad de una línea.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito enriquecida con los datos del catálogo.
// Un producto que ya no exista en el catálogo aparece con nombre de relleno
// y aporta 0 al total.
type CartLineResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse vista completa del carrito en curso.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}
