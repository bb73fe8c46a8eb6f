package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/dto"
)

// InventoryHandler maneja el listado y la corrección directa de existencias.
type InventoryHandler struct {
	uc *catalog.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *catalog.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List devuelve el libro de inventario completo en orden del libro.
// GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	entries, err := h.uc.ListStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// SetQuantity corrige la existencia de un producto.
// PUT /api/inventory/:code
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código requerido"})
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetQuantity(code, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
