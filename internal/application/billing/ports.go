package billing

import "context"

// ReceiptPDFGenerator puerto del exportador de documentos: recibe el layout
// del recibo (líneas de texto + QR + dimensiones en mm) y devuelve el PDF
// listo para imprimir. La generación es síncrona: cuando retorna, el QR ya
// está dibujado dentro del documento.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, layout ReceiptLayout) ([]byte, error)
}
