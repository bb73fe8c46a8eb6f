package repository

import "github.com/botboy223/printpron/internal/domain/entity"

// PaymentConfigRepository puerto de la configuración de pago del operador.
// Get retorna la configuración vacía (no nil) cuando aún no se ha guardado.
type PaymentConfigRepository interface {
	Save(cfg entity.PaymentConfig) error
	Get() (entity.PaymentConfig, error)
}
