package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son fallos de
// validación de entrada del operador, no fallos del sistema.
var (
	ErrNotFound             = errors.New("producto no encontrado")
	ErrInvalidProductInput  = errors.New("datos de producto inválidos")
	ErrNegativeQuantity     = errors.New("la cantidad no puede ser negativa")
	ErrOutOfStock           = errors.New("producto sin stock")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrPaymentNotConfigured = errors.New("configuración de pago incompleta")
	ErrMalformedRecord      = errors.New("registro persistido corrupto")
)
