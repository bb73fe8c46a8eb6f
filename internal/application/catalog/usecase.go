// Package catalog es la única vía de escritura sobre el catálogo y el libro
// de inventario. Mantener ambos registros detrás de un solo caso de uso
// elimina el invariante implícito "mismo nombre/precio en dos mapas": Save
// escribe los dos documentos, y las ediciones de existencia solo tocan
// Quantity.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

// UseCase casos de uso de catálogo + inventario.
type UseCase struct {
	catalogRepo repository.CatalogRepository
	stockRepo   repository.StockRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalogRepo repository.CatalogRepository, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{catalogRepo: catalogRepo, stockRepo: stockRepo}
}

// Save da de alta o sobrescribe un producto: entrada de catálogo y entrada de
// inventario en una sola operación. Code y Name no vacíos, Price > 0,
// Quantity >= 0.
func (uc *UseCase) Save(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: código y nombre son obligatorios", domain.ErrInvalidProductInput)
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidProductInput)
	}
	if in.Quantity < 0 {
		return nil, domain.ErrNegativeQuantity
	}

	if err := uc.catalogRepo.Upsert(entity.Product{Code: code, Name: name, Price: in.Price}); err != nil {
		return nil, fmt.Errorf("guardar catálogo: %w", err)
	}
	if err := uc.stockRepo.Upsert(entity.StockEntry{Code: code, Name: name, Price: in.Price, Quantity: in.Quantity}); err != nil {
		return nil, fmt.Errorf("guardar inventario: %w", err)
	}

	log.Info().Str("code", code).Str("name", name).Msg("producto guardado")
	return &dto.ProductResponse{Code: code, Name: name, Price: in.Price, Quantity: in.Quantity}, nil
}

// Lookup busca un producto por código; nil si no existe. Quantity viene del
// libro de inventario (0 si el libro no conoce el código).
func (uc *UseCase) Lookup(code string) (*dto.ProductResponse, error) {
	p, err := uc.catalogRepo.Get(code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.ProductResponse{
		Code:     p.Code,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: uc.Available(code),
	}, nil
}

// ListStock devuelve el libro de inventario completo en orden del libro.
func (uc *UseCase) ListStock() ([]dto.StockEntryResponse, error) {
	entries, err := uc.stockRepo.All()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockEntryResponse{Code: e.Code, Name: e.Name, Price: e.Price, Quantity: e.Quantity})
	}
	return out, nil
}

// SetQuantity corrige la existencia de un producto. Quantity >= 0.
func (uc *UseCase) SetQuantity(code string, quantity int) error {
	if quantity < 0 {
		return domain.ErrNegativeQuantity
	}
	e, err := uc.stockRepo.Get(code)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	e.Quantity = quantity
	return uc.stockRepo.Upsert(*e)
}

// Available devuelve la existencia actual de un código; 0 si es desconocido.
func (uc *UseCase) Available(code string) int {
	e, err := uc.stockRepo.Get(code)
	if err != nil || e == nil {
		return 0
	}
	return e.Quantity
}

// Decrement descuenta amount unidades con piso en cero: el resultado es
// siempre max(0, anterior-amount). La política es no mostrar jamás stock
// negativo; si el piso recorta de verdad queda un warn en el log, para que
// una sobreventa entre escaneo y cierre no pase en silencio.
func (uc *UseCase) Decrement(code string, amount int) error {
	if amount < 0 {
		return domain.ErrNegativeQuantity
	}
	e, err := uc.stockRepo.Get(code)
	if err != nil {
		return err
	}
	if e == nil {
		return nil // el libro no conoce el código; nada que descontar
	}
	next := e.Quantity - amount
	if next < 0 {
		log.Warn().
			Str("code", code).
			Int("available", e.Quantity).
			Int("requested", amount).
			Msg("descuento recortado en cero: posible sobreventa")
		next = 0
	}
	e.Quantity = next
	return uc.stockRepo.Upsert(*e)
}
