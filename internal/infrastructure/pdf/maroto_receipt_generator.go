// Package pdf implementa la generación del recibo térmico con Maroto v2.
//
// Layout de la página (48mm de ancho, alto calculado del contenido):
//
//	┌──────────────────────┐
//	│       INVOICE        │
//	│ Dt:02/01/2006        │
//	│ Tm:15:04:05          │
//	│ ---------------------│
//	│ Pen         x 2Rs ...│
//	│ ---------------------│
//	│     Tot:Rs20.00      │
//	│      [QR de pago]    │
//	└──────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/botboy223/printpron/internal/application/billing"
)

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes. Fuente
// monoespaciada: las columnas del recibo dependen del ancho fijo de los
// caracteres. El QR se dibuja dentro de Generate, así que al retornar el
// documento está completo (no hay espera por render asíncrono).
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, layout appbilling.ReceiptLayout) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(layout.PageWidthMM, layout.PageHeightMM).
		WithLeftMargin(1).WithRightMargin(1).
		WithTopMargin(1).WithBottomMargin(1).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle("Recibo", true).
		Build()

	m := maroto.New(cfg)

	for _, l := range layout.Lines {
		a := align.Left
		if l.Centered {
			a = align.Center
		}
		size := l.FontSize
		if size == 0 {
			size = 8
		}
		m.AddRows(row.New(layout.LineMM).Add(
			col.New(12).Add(text.New(l.Text, props.Text{Size: size, Align: a})),
		))
	}

	// QR de pago centrado, 40mm
	m.AddRows(row.New(layout.QRSideMM).Add(
		col.New(12).Add(code.NewQr(layout.QRData, props.Rect{
			Percent: 95,
			Center:  true,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}
