package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentConfigRequest datos del beneficiario UPI ingresados por el operador.
type PaymentConfigRequest struct {
	PayeeID   string `json:"payee_id"`
	PayeeName string `json:"payee_name"`
	Note      string `json:"note"`
}

// PaymentConfigResponse configuración vigente (para repoblar el formulario).
type PaymentConfigResponse struct {
	PayeeID    string `json:"payee_id"`
	PayeeName  string `json:"payee_name"`
	Note       string `json:"note"`
	Configured bool   `json:"configured"`
}

// SaleLineResponse línea de una venta del historial, enriquecida con el
// nombre y precio actuales del catálogo (relleno si el producto ya no existe).
type SaleLineResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleRecordResponse una venta finalizada del historial.
type SaleRecordResponse struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Total     decimal.Decimal    `json:"total"`
	Lines     []SaleLineResponse `json:"lines"`
}

// SaleHistoryResponse historial completo, en orden de finalización.
type SaleHistoryResponse struct {
	Sales []SaleRecordResponse `json:"sales"`
}
