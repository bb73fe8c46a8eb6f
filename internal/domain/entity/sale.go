package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord es el registro inmutable de una venta finalizada: total y copia
// de las líneas del carrito al momento del cierre. El historial es
// append-only; no existe edición ni borrado.
type SaleRecord struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Total     decimal.Decimal `json:"total"`
	Lines     []CartLine      `json:"lines"`
}
