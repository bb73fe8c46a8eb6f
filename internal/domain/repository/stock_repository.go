package repository

import "github.com/botboy223/printpron/internal/domain/entity"

// StockRepository puerto de persistencia del libro de inventario.
// All preserva el orden de inserción del libro (primer guardado del código);
// lowStock y el listado de inventario dependen de ese orden.
type StockRepository interface {
	Upsert(e entity.StockEntry) error
	Get(code string) (*entity.StockEntry, error)
	All() ([]entity.StockEntry, error)
}
