package repository

import "github.com/botboy223/printpron/internal/domain/entity"

// CatalogRepository puerto de persistencia del catálogo (código → producto).
// Get retorna nil sin error cuando el código no existe.
type CatalogRepository interface {
	Upsert(p entity.Product) error
	Get(code string) (*entity.Product, error)
	All() ([]entity.Product, error)
}
