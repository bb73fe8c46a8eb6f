package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: el caso de uso se arma contra un almacén real sobre un
// directorio temporal, así los tests cubren también el round-trip por disco.
// ──────────────────────────────────────────────────────────────────────────────

func buildCatalogUC(t *testing.T) *catalog.UseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err, "el almacén debe abrir sobre un directorio vacío")
	return catalog.NewUseCase(store.Catalog(), store.Stock())
}

func saveProduct(t *testing.T, uc *catalog.UseCase, code, name, price string, qty int) {
	t.Helper()
	_, err := uc.Save(dto.SaveProductRequest{
		Code:     code,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	})
	require.NoError(t, err)
}

// ── Save ──────────────────────────────────────────────────────────────────────

// TestSave_RoundTrip guarda un producto y lo recupera con los mismos datos,
// incluida la existencia inicial.
func TestSave_RoundTrip(t *testing.T) {
	uc := buildCatalogUC(t)

	saveProduct(t, uc, "123456", "Pen", "10.00", 10)

	p, err := uc.Lookup("123456")
	require.NoError(t, err)
	require.NotNil(t, p, "el producto recién guardado debe encontrarse")
	assert.Equal(t, "Pen", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("10.00")),
		"el precio debe sobrevivir tal cual: %s", p.Price)
	assert.Equal(t, 10, p.Quantity)
}

// TestSave_SobrescribeSinDuplicar verifica que guardar dos veces el mismo
// código sobrescribe nombre, precio y existencia en lugar de duplicar la
// entrada del libro.
func TestSave_SobrescribeSinDuplicar(t *testing.T) {
	uc := buildCatalogUC(t)

	saveProduct(t, uc, "123456", "Pen", "10.00", 10)
	saveProduct(t, uc, "123456", "Pen Azul", "12.50", 7)

	entries, err := uc.ListStock()
	require.NoError(t, err)
	require.Len(t, entries, 1, "re-guardar el mismo código no debe duplicar la fila")
	assert.Equal(t, "Pen Azul", entries[0].Name)
	assert.Equal(t, 7, entries[0].Quantity)
}

func TestSave_ErrorSiCodigoVacio(t *testing.T) {
	uc := buildCatalogUC(t)
	_, err := uc.Save(dto.SaveProductRequest{Code: "   ", Name: "Pen", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidProductInput)
}

func TestSave_ErrorSiNombreVacio(t *testing.T) {
	uc := buildCatalogUC(t)
	_, err := uc.Save(dto.SaveProductRequest{Code: "123", Name: "", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidProductInput)
}

func TestSave_ErrorSiPrecioCero(t *testing.T) {
	uc := buildCatalogUC(t)
	_, err := uc.Save(dto.SaveProductRequest{Code: "123", Name: "Pen", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidProductInput, "precio 0 no es vendible")
}

func TestSave_ErrorSiCantidadNegativa(t *testing.T) {
	uc := buildCatalogUC(t)
	_, err := uc.Save(dto.SaveProductRequest{
		Code: "123", Name: "Pen", Price: decimal.NewFromInt(10), Quantity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// TestLookup_DesconocidoEsNil un código jamás guardado devuelve nil sin
// error: "no existe" es una respuesta, no un fallo.
func TestLookup_DesconocidoEsNil(t *testing.T) {
	uc := buildCatalogUC(t)
	p, err := uc.Lookup("999999")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ── SetQuantity ───────────────────────────────────────────────────────────────

func TestSetQuantity_Corrige(t *testing.T) {
	uc := buildCatalogUC(t)
	saveProduct(t, uc, "123456", "Pen", "10.00", 10)

	require.NoError(t, uc.SetQuantity("123456", 3))
	assert.Equal(t, 3, uc.Available("123456"))
}

func TestSetQuantity_ErrorSiNegativa(t *testing.T) {
	uc := buildCatalogUC(t)
	saveProduct(t, uc, "123456", "Pen", "10.00", 10)

	err := uc.SetQuantity("123456", -5)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.Equal(t, 10, uc.Available("123456"), "la existencia previa debe quedar intacta")
}

func TestSetQuantity_ErrorSiDesconocido(t *testing.T) {
	uc := buildCatalogUC(t)
	err := uc.SetQuantity("999999", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Decrement ─────────────────────────────────────────────────────────────────

func TestDecrement_Descuenta(t *testing.T) {
	uc := buildCatalogUC(t)
	saveProduct(t, uc, "123456", "Pen", "10.00", 10)

	require.NoError(t, uc.Decrement("123456", 3))
	assert.Equal(t, 7, uc.Available("123456"))
}

// TestDecrement_PisoEnCero verifica la política max(0, anterior-n): descontar
// más de lo que hay deja cero, nunca negativo.
func TestDecrement_PisoEnCero(t *testing.T) {
	uc := buildCatalogUC(t)
	saveProduct(t, uc, "123456", "Pen", "10.00", 2)

	require.NoError(t, uc.Decrement("123456", 5))
	assert.Equal(t, 0, uc.Available("123456"), "el descuento se recorta en cero")
}

// TestDecrement_CodigoDesconocidoEsNoOp descontar un código que el libro no
// conoce no falla ni crea la entrada.
func TestDecrement_CodigoDesconocidoEsNoOp(t *testing.T) {
	uc := buildCatalogUC(t)

	require.NoError(t, uc.Decrement("999999", 1))

	entries, err := uc.ListStock()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ── Available ─────────────────────────────────────────────────────────────────

func TestAvailable_DesconocidoEsCero(t *testing.T) {
	uc := buildCatalogUC(t)
	assert.Equal(t, 0, uc.Available("999999"))
}
