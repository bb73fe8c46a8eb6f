package entity

// PaymentConfig son los datos del beneficiario UPI que el operador configura
// una vez y se reutilizan en el QR de pago de cada venta hasta que cambien.
type PaymentConfig struct {
	PayeeID   string `json:"payee_id"`   // VPA, ej: tienda@upi
	PayeeName string `json:"payee_name"`
	Note      string `json:"note"`
}

// IsComplete indica si los tres campos están poblados; Finalize exige la
// configuración completa antes de producir cualquier efecto.
func (c PaymentConfig) IsComplete() bool {
	return c.PayeeID != "" && c.PayeeName != "" && c.Note != ""
}
