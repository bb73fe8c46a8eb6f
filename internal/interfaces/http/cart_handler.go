package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/botboy223/printpron/internal/application/cart"
	"github.com/botboy223/printpron/internal/application/dto"
)

// CartHandler maneja el carrito de la transacción en curso.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get devuelve la vista enriquecida del carrito con su total.
// GET /api/cart
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.View())
}

// AddItem agrega (o recupera sin modificar) la línea del código.
// POST /api/cart/items
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código requerido"})
	}
	if _, err := h.uc.AddOrGet(in.Code); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.View())
}

// SetQuantity fija la cantidad de la línea indicada por índice. La entrada
// no numérica no parsea y se rechaza con 400: el cliente conserva su estado
// transitorio de edición y la cantidad previa sigue vigente.
// PUT /api/cart/items/:index
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetQuantity(index, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.uc.View())
}

// Clear abandona el carrito en curso.
// DELETE /api/cart
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
