// Package localstore persiste el estado del mostrador como documentos JSON
// completos en disco local, el equivalente del almacenamiento local del
// navegador: cuatro registros nominados, lectura/escritura de documento
// entero, sin actualizaciones parciales. Cada mutación reescribe el
// documento (archivo temporal + rename). Un archivo ausente arranca vacío;
// uno presente pero corrupto detiene el arranque (ErrMalformedRecord):
// reiniciar a valores por defecto destruiría el catálogo y el historial.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/domain/entity"
)

// Nombres de los cuatro documentos persistidos.
const (
	fileProducts = "products.json"
	fileStock    = "stock.json"
	filePayment  = "payment.json"
	fileHistory  = "history.json"
)

// Store estado del mostrador en memoria con respaldo en disco. El mutex
// serializa el acceso: el modelo es de un solo operador, pero el runtime
// HTTP es concurrente.
type Store struct {
	dir string

	mu      sync.RWMutex
	catalog map[string]entity.Product
	stock   []entity.StockEntry // orden del libro = orden de primer guardado
	payment entity.PaymentConfig
	history []entity.SaleRecord
}

// Open crea el directorio de datos si hace falta y carga los cuatro
// documentos. Falla rápido ante JSON corrupto.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	s := &Store{
		dir:     dir,
		catalog: make(map[string]entity.Product),
	}
	if err := s.readDocument(fileProducts, &s.catalog); err != nil {
		return nil, err
	}
	if err := s.readDocument(fileStock, &s.stock); err != nil {
		return nil, err
	}
	if err := s.readDocument(filePayment, &s.payment); err != nil {
		return nil, err
	}
	if err := s.readDocument(fileHistory, &s.history); err != nil {
		return nil, err
	}
	return s, nil
}

// readDocument lee un documento completo; ausente = valor cero, corrupto = error.
func (s *Store) readDocument(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("localstore: leer %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("localstore: %s: %w: %v", name, domain.ErrMalformedRecord, err)
	}
	return nil
}

// writeDocument serializa y reemplaza el documento de forma atómica
// (temporal + rename), para que un corte a mitad de escritura nunca deje un
// documento a medias.
func (s *Store) writeDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("localstore: reemplazar %s: %w", name, err)
	}
	return nil
}
