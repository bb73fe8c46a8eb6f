package localstore

import (
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

var _ repository.PaymentConfigRepository = (*PaymentConfigRepo)(nil)

// PaymentConfigRepo implementación del puerto PaymentConfigRepository.
type PaymentConfigRepo struct {
	s *Store
}

// PaymentConfig devuelve el adaptador de configuración de pago del almacén.
func (s *Store) PaymentConfig() *PaymentConfigRepo { return &PaymentConfigRepo{s: s} }

// Save reemplaza la configuración y persiste el documento.
func (r *PaymentConfigRepo) Save(cfg entity.PaymentConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payment = cfg
	return r.s.writeDocument(filePayment, r.s.payment)
}

// Get devuelve la configuración vigente (vacía si nunca se guardó).
func (r *PaymentConfigRepo) Get() (entity.PaymentConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payment, nil
}
