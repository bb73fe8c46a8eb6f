package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botboy223/printpron/internal/application/analytics"
)

// DashboardHandler expone el resumen del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve ingreso total y lista de stock bajo.
// GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.GetSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
