package scan_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botboy223/printpron/internal/application/cart"
	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/application/scan"
	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildScanUC(t *testing.T) (*scan.UseCase, *catalog.UseCase, *cart.UseCase) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	catalogUC := catalog.NewUseCase(store.Catalog(), store.Stock())
	cartUC := cart.NewUseCase(store.Catalog(), store.Stock())
	return scan.NewUseCase(catalogUC, cartUC), catalogUC, cartUC
}

func seed(t *testing.T, uc *catalog.UseCase, code, name, price string, qty int) {
	t.Helper()
	_, err := uc.Save(dto.SaveProductRequest{
		Code:     code,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	})
	require.NoError(t, err)
}

// ── ScanSetup ─────────────────────────────────────────────────────────────────

func TestScanSetup_ConocidoPueblaFormulario(t *testing.T) {
	scanUC, catalogUC, _ := buildScanUC(t)
	seed(t, catalogUC, "123456", "Pen", "10.00", 10)

	resp, err := scanUC.ScanSetup("123456")
	require.NoError(t, err)
	assert.True(t, resp.Known)
	require.NotNil(t, resp.Product)
	assert.Equal(t, "Pen", resp.Product.Name)
}

// TestScanSetup_NuevoLimpiaFormulario un código nuevo responde Known=false y
// sin producto: el formulario se limpia para dar de alta.
func TestScanSetup_NuevoLimpiaFormulario(t *testing.T) {
	scanUC, _, _ := buildScanUC(t)

	resp, err := scanUC.ScanSetup("999999")
	require.NoError(t, err)
	assert.False(t, resp.Known)
	assert.Nil(t, resp.Product)
}

// ── ScanCart: supresión de duplicados ─────────────────────────────────────────

// TestScanCart_DuplicadoConsecutivoSeIgnora el lector entrega el mismo frame
// varias veces seguidas; solo el primer escaneo toca el carrito.
func TestScanCart_DuplicadoConsecutivoSeIgnora(t *testing.T) {
	scanUC, catalogUC, cartUC := buildScanUC(t)
	seed(t, catalogUC, "123456", "Pen", "10.00", 10)

	first, err := scanUC.ScanCart("123456")
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := scanUC.ScanCart("123456")
	require.NoError(t, err)
	assert.True(t, second.Duplicate, "el re-escaneo consecutivo es un no-op")
	assert.Len(t, cartUC.Snapshot(), 1)
	assert.Equal(t, 1, cartUC.Snapshot()[0].Quantity)
}

// TestScanCart_CodigoDistintoReactiva escanear un código distinto reactiva
// el procesamiento, incluso si el primero vuelve después.
func TestScanCart_CodigoDistintoReactiva(t *testing.T) {
	scanUC, catalogUC, cartUC := buildScanUC(t)
	seed(t, catalogUC, "111", "Pen", "10.00", 10)
	seed(t, catalogUC, "222", "Notebook", "40.00", 5)

	_, err := scanUC.ScanCart("111")
	require.NoError(t, err)
	_, err = scanUC.ScanCart("222")
	require.NoError(t, err)

	third, err := scanUC.ScanCart("111")
	require.NoError(t, err)
	assert.False(t, third.Duplicate, "111 dejó de ser el último código escaneado")
	assert.Len(t, cartUC.Snapshot(), 2, "el código ya estaba en el carrito: línea existente, sin duplicar")
}

// TestScanCart_DesconocidoAvisaCadaVez un código desconocido no actualiza el
// último escaneado: cada intento repite el aviso en lugar de suprimirse.
func TestScanCart_DesconocidoAvisaCadaVez(t *testing.T) {
	scanUC, _, cartUC := buildScanUC(t)

	_, err := scanUC.ScanCart("999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = scanUC.ScanCart("999999")
	assert.ErrorIs(t, err, domain.ErrNotFound, "el segundo intento debe avisar de nuevo, no suprimirse")
	assert.Empty(t, cartUC.Snapshot())
}

// TestScanCart_SinStockPropagaError el escaneo de un producto agotado
// propaga el conflicto del carrito.
func TestScanCart_SinStockPropagaError(t *testing.T) {
	scanUC, catalogUC, _ := buildScanUC(t)
	seed(t, catalogUC, "123456", "Pen", "10.00", 0)

	_, err := scanUC.ScanCart("123456")
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
}
