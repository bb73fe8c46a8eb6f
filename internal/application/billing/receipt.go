package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Geometría del recibo para impresora térmica de 2 pulgadas. Todo en mm.
const (
	ReceiptPageWidthMM = 48.0
	receiptMarginMM    = 1.0
	receiptLineMM      = 4.0
	receiptQRSideMM    = 40.0
	receiptBottomPadMM = 8.0

	// ancho útil: página menos ambos márgenes; el separador usa la mitad
	receiptUsableMM = ReceiptPageWidthMM - 2*receiptMarginMM
)

// ReceiptLine una línea de texto del recibo.
type ReceiptLine struct {
	Text     string
	Centered bool
	FontSize float64
}

// ReceiptLayout instrucciones para el exportador: dimensiones de página,
// líneas en orden y datos del QR de pago.
type ReceiptLayout struct {
	PageWidthMM  float64
	PageHeightMM float64
	LineMM       float64
	Lines        []ReceiptLine
	QRData       string
	QRSideMM     float64
}

// ReceiptItem una línea de venta ya resuelta contra el catálogo.
type ReceiptItem struct {
	Name     string
	Quantity int
	Amount   decimal.Decimal // precio × cantidad
}

// BuildReceiptLayout arma el recibo: cabecera, fecha y hora, separador, una
// línea por artículo (nombre a 12 caracteres, cantidad a 2, monto a 7),
// separador, total centrado y el QR de pago. Un carrito vacío imprime la
// línea literal "No Items". La altura de página se calcula del contenido:
// cabecera (4 líneas) + artículos + separadores (2) + pie (2) + QR + colchón.
func BuildReceiptLayout(items []ReceiptItem, total decimal.Decimal, now time.Time, qrData string) ReceiptLayout {
	separator := strings.Repeat("-", int(receiptUsableMM/2))

	lines := []ReceiptLine{
		{Text: "INVOICE", Centered: true, FontSize: 10},
		{Text: "Dt:" + now.Format("02/01/2006"), FontSize: 8},
		{Text: "Tm:" + now.Format("15:04:05"), FontSize: 8},
		{Text: separator, Centered: true, FontSize: 8},
	}

	if len(items) == 0 {
		lines = append(lines, ReceiptLine{Text: "No Items", FontSize: 8})
	} else {
		for _, it := range items {
			lines = append(lines, ReceiptLine{Text: FormatItemLine(it), FontSize: 8})
		}
	}

	lines = append(lines,
		ReceiptLine{Text: separator, Centered: true, FontSize: 8},
		ReceiptLine{Text: "Tot:Rs" + total.StringFixed(2), Centered: true, FontSize: 8},
	)

	headerMM := receiptLineMM * 4 // título + fecha + hora + separador
	itemsMM := receiptLineMM * float64(max(1, len(items)))
	separatorsMM := receiptLineMM * 2
	footerMM := receiptLineMM * 2 // total + espacio
	height := headerMM + itemsMM + separatorsMM + footerMM + receiptQRSideMM + receiptBottomPadMM

	return ReceiptLayout{
		PageWidthMM:  ReceiptPageWidthMM,
		PageHeightMM: height,
		LineMM:       receiptLineMM,
		Lines:        lines,
		QRData:       qrData,
		QRSideMM:     receiptQRSideMM,
	}
}

// FormatItemLine formatea una línea de artículo con columnas fijas:
// nombre recortado/rellenado a 12, "x", cantidad a 2 (derecha), "Rs" y
// monto a 7 (derecha): `Pen         x 2Rs  20.00`.
func FormatItemLine(it ReceiptItem) string {
	return fmt.Sprintf("%-12.12sx%2dRs%7s", it.Name, it.Quantity, it.Amount.StringFixed(2))
}
