// Package scan recibe los códigos decodificados por el lector de barras
// externo. Existen dos contextos independientes, como los dos lectores del
// mostrador: "setup" puebla el formulario de producto y "cart" agrega al
// carrito suprimiendo escaneos consecutivos del mismo código.
package scan

import (
	"fmt"
	"sync"

	"github.com/botboy223/printpron/internal/application/cart"
	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain"
)

// Contextos de escaneo válidos.
const (
	ContextSetup = "setup"
	ContextCart  = "cart"
)

// UseCase despacho de escaneos. lastScanned conserva el último código
// procesado en contexto carrito: un resultado de escaneo sin cambio es un
// no-op; un código distinto reactiva el procesamiento. Un código desconocido
// no actualiza lastScanned, así el operador recibe el aviso en cada intento.
type UseCase struct {
	mu          sync.Mutex
	lastScanned string

	catalogUC *catalog.UseCase
	cartUC    *cart.UseCase
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalogUC *catalog.UseCase, cartUC *cart.UseCase) *UseCase {
	return &UseCase{catalogUC: catalogUC, cartUC: cartUC}
}

// ScanSetup busca el código y devuelve los datos para el formulario de
// producto; para un código nuevo Known es false y el formulario se limpia.
func (uc *UseCase) ScanSetup(code string) (*dto.ScanSetupResponse, error) {
	p, err := uc.catalogUC.Lookup(code)
	if err != nil {
		return nil, err
	}
	return &dto.ScanSetupResponse{Code: code, Known: p != nil, Product: p}, nil
}

// ScanCart agrega el código al carrito. Un escaneo consecutivo del mismo
// código se ignora (Duplicate=true) sin tocar el carrito.
func (uc *UseCase) ScanCart(code string) (*dto.ScanCartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if code == uc.lastScanned {
		return &dto.ScanCartResponse{Code: code, Duplicate: true, Cart: uc.cartUC.View()}, nil
	}

	if p, err := uc.catalogUC.Lookup(code); err != nil {
		return nil, err
	} else if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, code)
	}

	uc.lastScanned = code
	if _, err := uc.cartUC.AddOrGet(code); err != nil {
		return nil, err
	}
	return &dto.ScanCartResponse{Code: code, Duplicate: false, Cart: uc.cartUC.View()}, nil
}
