package billing

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/botboy223/printpron/internal/domain/entity"
)

// BuildPaymentURI arma el URI de cobro UPI para el QR del recibo:
//
//	upi://pay?pa=<payee>&pn=<nombre>&am=<monto 2dp>&cu=<moneda>&tn=<nota>
//
// Nombre y nota van URL-escapados; el monto siempre con dos decimales.
func BuildPaymentURI(cfg entity.PaymentConfig, amount decimal.Decimal, currency string) string {
	return "upi://pay?pa=" + cfg.PayeeID +
		"&pn=" + url.QueryEscape(cfg.PayeeName) +
		"&am=" + amount.StringFixed(2) +
		"&cu=" + currency +
		"&tn=" + url.QueryEscape(cfg.Note)
}
