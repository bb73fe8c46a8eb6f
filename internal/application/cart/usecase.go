// Package cart mantiene el carrito de la transacción en curso. El carrito
// vive solo en memoria y nunca se persiste: abandonar la sesión lo descarta.
package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/domain/repository"
)

// placeholderName nombre de relleno para líneas cuyo producto ya no está en
// el catálogo; esas líneas aportan 0 al total.
const placeholderName = "Producto desconocido"

// UseCase operaciones sobre el carrito en curso. El mutex serializa el
// acceso: el modelo es de un solo operador, pero los handlers HTTP corren
// concurrentes.
type UseCase struct {
	mu    sync.Mutex
	lines []entity.CartLine

	catalogRepo repository.CatalogRepository
	stockRepo   repository.StockRepository
}

// NewUseCase construye el caso de uso con un carrito vacío.
func NewUseCase(catalogRepo repository.CatalogRepository, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{catalogRepo: catalogRepo, stockRepo: stockRepo}
}

// AddOrGet devuelve la línea existente del código sin modificarla (escanear
// dos veces el mismo artículo NO incrementa la cantidad; el operador debe
// editarla explícitamente). Si no hay línea, exige existencia disponible y
// crea una con cantidad 1.
func (uc *UseCase) AddOrGet(code string) (entity.CartLine, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, l := range uc.lines {
		if l.Code == code {
			return l, nil
		}
	}

	p, err := uc.catalogRepo.Get(code)
	if err != nil {
		return entity.CartLine{}, err
	}
	if p == nil {
		return entity.CartLine{}, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}
	if uc.available(code) <= 0 {
		return entity.CartLine{}, fmt.Errorf("%w: %s", domain.ErrOutOfStock, p.Name)
	}

	line := entity.CartLine{Code: code, Quantity: 1}
	uc.lines = append(uc.lines, line)
	return line, nil
}

// SetQuantity fija la cantidad de la línea index. Exige quantity >= 1 y
// quantity <= existencia disponible; si no, la cantidad anterior queda en
// efecto. La entrada no numérica o vacía nunca llega aquí: es un estado
// transitorio de edición que la frontera tipada del HTTP rechaza.
func (uc *UseCase) SetQuantity(index, quantity int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if index < 0 || index >= len(uc.lines) {
		return fmt.Errorf("%w: línea %d", domain.ErrNotFound, index)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: la cantidad mínima es 1", domain.ErrNegativeQuantity)
	}
	available := uc.available(uc.lines[index].Code)
	if quantity > available {
		return fmt.Errorf("%w: solo quedan %d unidades", domain.ErrInsufficientStock, available)
	}
	uc.lines[index].Quantity = quantity
	return nil
}

// View devuelve el carrito enriquecido con nombre, precio y total por línea,
// más el total general recalculado desde cero (sin caché que pueda derivar).
func (uc *UseCase) View() dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.viewLocked()
}

func (uc *UseCase) viewLocked() dto.CartResponse {
	resp := dto.CartResponse{Lines: make([]dto.CartLineResponse, 0, len(uc.lines)), Total: decimal.Zero}
	for _, l := range uc.lines {
		name := placeholderName
		price := decimal.Zero
		if p, err := uc.catalogRepo.Get(l.Code); err == nil && p != nil {
			name = p.Name
			price = p.Price
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		resp.Lines = append(resp.Lines, dto.CartLineResponse{
			Code:      l.Code,
			Name:      name,
			Price:     price,
			Quantity:  l.Quantity,
			LineTotal: lineTotal,
		})
		resp.Total = resp.Total.Add(lineTotal)
	}
	return resp
}

// Total recalcula el total del carrito sumando precio × cantidad de cada
// línea contra el catálogo actual.
func (uc *UseCase) Total() decimal.Decimal {
	return uc.View().Total
}

// Snapshot copia inmutable de las líneas actuales (para el registro de venta).
func (uc *UseCase) Snapshot() []entity.CartLine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.CartLine, len(uc.lines))
	copy(out, uc.lines)
	return out
}

// Clear vacía el carrito (cierre de venta o abandono).
func (uc *UseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lines = nil
}

func (uc *UseCase) available(code string) int {
	e, err := uc.stockRepo.Get(code)
	if err != nil || e == nil {
		return 0
	}
	return e.Quantity
}
