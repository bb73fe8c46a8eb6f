package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/application/scan"
)

// ScanHandler recibe los códigos decodificados por el lector externo.
type ScanHandler struct {
	uc *scan.UseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(uc *scan.UseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan despacha el código al contexto indicado (setup o cart).
// POST /api/scan
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código requerido"})
	}
	switch in.Context {
	case scan.ContextSetup:
		resp, err := h.uc.ScanSetup(in.Code)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(resp)
	case scan.ContextCart:
		resp, err := h.uc.ScanCart(in.Code)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(resp)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contexto de escaneo desconocido"})
	}
}
