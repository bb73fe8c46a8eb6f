// Package billing cierra la venta en curso: valida, totaliza, genera el
// recibo PDF con su QR de pago y confirma los efectos sobre historial,
// inventario y carrito.
package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/botboy223/printpron/internal/application/cart"
	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

// nombre de relleno en el recibo cuando el producto ya no está en el catálogo
const receiptUnknownName = "Unk"

// FinalizeUseCase cierra la venta en curso. El orden es estricto: toda la
// validación ocurre antes del primer efecto, de modo que cualquier fallo
// (ej: configuración de pago incompleta) deja historial, inventario y
// carrito exactamente como estaban.
type FinalizeUseCase struct {
	cartUC      *cart.UseCase
	catalogUC   *catalog.UseCase
	catalogRepo repository.CatalogRepository
	historyRepo repository.SaleHistoryRepository
	paymentRepo repository.PaymentConfigRepository
	generator   ReceiptPDFGenerator
	currency    string
}

// NewFinalizeUseCase construye el caso de uso.
func NewFinalizeUseCase(
	cartUC *cart.UseCase,
	catalogUC *catalog.UseCase,
	catalogRepo repository.CatalogRepository,
	historyRepo repository.SaleHistoryRepository,
	paymentRepo repository.PaymentConfigRepository,
	generator ReceiptPDFGenerator,
	currency string,
) *FinalizeUseCase {
	return &FinalizeUseCase{
		cartUC:      cartUC,
		catalogUC:   catalogUC,
		catalogRepo: catalogRepo,
		historyRepo: historyRepo,
		paymentRepo: paymentRepo,
		generator:   generator,
		currency:    currency,
	}
}

// Finalize valida la configuración de pago, calcula el total, genera el PDF
// del recibo y recién entonces confirma en orden: agrega el registro al
// historial, descuenta el inventario línea por línea y vacía el carrito.
// Devuelve el registro de venta y los bytes del PDF.
func (uc *FinalizeUseCase) Finalize(ctx context.Context) (*entity.SaleRecord, []byte, error) {
	// ── 1. Validar configuración de pago (única precondición que falla) ──────
	cfg, err := uc.paymentRepo.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("leer configuración de pago: %w", err)
	}
	if !cfg.IsComplete() {
		return nil, nil, domain.ErrPaymentNotConfigured
	}

	// ── 2. Total y copia del carrito ─────────────────────────────────────────
	snapshot := uc.cartUC.Snapshot()
	total := uc.cartUC.Total()
	now := time.Now()

	// ── 3. URI de pago + layout del recibo + PDF ─────────────────────────────
	paymentURI := BuildPaymentURI(cfg, total, uc.currency)
	layout := BuildReceiptLayout(uc.receiptItems(snapshot), total, now, paymentURI)
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, layout)
	if err != nil {
		return nil, nil, fmt.Errorf("generar recibo: %w", err)
	}

	// ── 4. Confirmar efectos: historial → inventario → carrito ───────────────
	rec := entity.SaleRecord{
		ID:        uuid.New().String(),
		Timestamp: now,
		Total:     total,
		Lines:     snapshot,
	}
	if err := uc.historyRepo.Append(rec); err != nil {
		return nil, nil, fmt.Errorf("guardar venta: %w", err)
	}
	for _, l := range snapshot {
		if err := uc.catalogUC.Decrement(l.Code, l.Quantity); err != nil {
			return nil, nil, fmt.Errorf("descontar inventario de %s: %w", l.Code, err)
		}
	}
	uc.cartUC.Clear()

	log.Info().
		Str("sale_id", rec.ID).
		Str("total", total.StringFixed(2)).
		Int("lines", len(snapshot)).
		Msg("venta finalizada")
	return &rec, pdf, nil
}

// receiptItems resuelve cada línea contra el catálogo actual; un producto
// desaparecido sale con nombre de relleno y monto 0.
func (uc *FinalizeUseCase) receiptItems(lines []entity.CartLine) []ReceiptItem {
	items := make([]ReceiptItem, 0, len(lines))
	for _, l := range lines {
		name := receiptUnknownName
		price := decimal.Zero
		if p, err := uc.catalogRepo.Get(l.Code); err == nil && p != nil {
			name = p.Name
			price = p.Price
		}
		items = append(items, ReceiptItem{
			Name:     name,
			Quantity: l.Quantity,
			Amount:   price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return items
}

// SavePaymentConfig guarda los datos del beneficiario (se reutilizan en cada
// venta hasta que cambien). Los tres campos se recortan de espacios.
func (uc *FinalizeUseCase) SavePaymentConfig(in dto.PaymentConfigRequest) error {
	cfg := entity.PaymentConfig{
		PayeeID:   strings.TrimSpace(in.PayeeID),
		PayeeName: strings.TrimSpace(in.PayeeName),
		Note:      strings.TrimSpace(in.Note),
	}
	return uc.paymentRepo.Save(cfg)
}

// PaymentConfig devuelve la configuración vigente para repoblar el formulario.
func (uc *FinalizeUseCase) PaymentConfig() (*dto.PaymentConfigResponse, error) {
	cfg, err := uc.paymentRepo.Get()
	if err != nil {
		return nil, err
	}
	return &dto.PaymentConfigResponse{
		PayeeID:    cfg.PayeeID,
		PayeeName:  cfg.PayeeName,
		Note:       cfg.Note,
		Configured: cfg.IsComplete(),
	}, nil
}
