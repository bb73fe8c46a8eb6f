package repository

import "github.com/botboy223/printpron/internal/domain/entity"

// SaleHistoryRepository puerto del historial de ventas. Append-only: no hay
// operación de edición ni borrado.
type SaleHistoryRepository interface {
	Append(rec entity.SaleRecord) error
	All() ([]entity.SaleRecord, error)
}
