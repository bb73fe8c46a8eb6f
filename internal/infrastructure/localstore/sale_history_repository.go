package localstore

import (
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

var _ repository.SaleHistoryRepository = (*SaleHistoryRepo)(nil)

// SaleHistoryRepo implementación del puerto SaleHistoryRepository. Solo
// Append y All: el historial no se edita ni se borra.
type SaleHistoryRepo struct {
	s *Store
}

// SaleHistory devuelve el adaptador del historial de ventas del almacén.
func (s *Store) SaleHistory() *SaleHistoryRepo { return &SaleHistoryRepo{s: s} }

// Append agrega el registro al final y persiste el documento completo.
func (r *SaleHistoryRepo) Append(rec entity.SaleRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.history = append(r.s.history, rec)
	return r.s.writeDocument(fileHistory, r.s.history)
}

// All devuelve una copia del historial en orden de finalización.
func (r *SaleHistoryRepo) All() ([]entity.SaleRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.SaleRecord, len(r.s.history))
	copy(out, r.s.history)
	return out, nil
}
