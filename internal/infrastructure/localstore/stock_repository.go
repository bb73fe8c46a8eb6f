package localstore

import (
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre el almacén local.
// El documento es un arreglo: el orden del libro (primer guardado de cada
// código) sobrevive al round-trip por disco.
type StockRepo struct {
	s *Store
}

// Stock devuelve el adaptador del libro de inventario del almacén.
func (s *Store) Stock() *StockRepo { return &StockRepo{s: s} }

// Upsert reemplaza la entrada en su posición del libro, o la agrega al final
// si el código es nuevo; luego persiste el documento completo.
func (r *StockRepo) Upsert(e entity.StockEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	replaced := false
	for i := range r.s.stock {
		if r.s.stock[i].Code == e.Code {
			r.s.stock[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		r.s.stock = append(r.s.stock, e)
	}
	return r.s.writeDocument(fileStock, r.s.stock)
}

// Get devuelve la entrada del código, o nil si el libro no lo conoce.
func (r *StockRepo) Get(code string) (*entity.StockEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.stock {
		if r.s.stock[i].Code == code {
			e := r.s.stock[i]
			return &e, nil
		}
	}
	return nil, nil
}

// All devuelve una copia del libro completo en su orden.
func (r *StockRepo) All() ([]entity.StockEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.StockEntry, len(r.s.stock))
	copy(out, r.s.stock)
	return out, nil
}
