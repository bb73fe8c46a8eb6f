package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/botboy223/printpron/internal/application/billing"
	"github.com/botboy223/printpron/internal/application/dto"
)

// BillingHandler maneja el cierre de venta, la configuración de pago y el
// historial.
type BillingHandler struct {
	finalizeUC *billing.FinalizeUseCase
	historyUC  *billing.HistoryUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(finalizeUC *billing.FinalizeUseCase, historyUC *billing.HistoryUseCase) *BillingHandler {
	return &BillingHandler{finalizeUC: finalizeUC, historyUC: historyUC}
}

// Checkout finaliza la venta en curso y responde el recibo PDF.
// POST /api/checkout
func (h *BillingHandler) Checkout(c *fiber.Ctx) error {
	rec, pdf, err := h.finalizeUC.Finalize(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo_%s.pdf"`, rec.ID))
	return c.Send(pdf)
}

// ListSales devuelve el historial de ventas.
// GET /api/sales
func (h *BillingHandler) ListSales(c *fiber.Ctx) error {
	resp, err := h.historyUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetPaymentConfig devuelve la configuración de pago vigente.
// GET /api/payment-config
func (h *BillingHandler) GetPaymentConfig(c *fiber.Ctx) error {
	resp, err := h.finalizeUC.PaymentConfig()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SavePaymentConfig guarda los datos del beneficiario UPI.
// PUT /api/payment-config
func (h *BillingHandler) SavePaymentConfig(c *fiber.Ctx) error {
	var in dto.PaymentConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.finalizeUC.SavePaymentConfig(in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
