package localstore

import (
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre el almacén local.
type CatalogRepo struct {
	s *Store
}

// Catalog devuelve el adaptador de catálogo del almacén.
func (s *Store) Catalog() *CatalogRepo { return &CatalogRepo{s: s} }

// Upsert sobrescribe la entrada del código y persiste el documento completo.
func (r *CatalogRepo) Upsert(p entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.catalog[p.Code] = p
	return r.s.writeDocument(fileProducts, r.s.catalog)
}

// Get devuelve el producto del código, o nil si no existe.
func (r *CatalogRepo) Get(code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.catalog[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// All devuelve una copia de todas las entradas del catálogo.
func (r *CatalogRepo) All() ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Product, 0, len(r.s.catalog))
	for _, p := range r.s.catalog {
		out = append(out, p)
	}
	return out, nil
}
