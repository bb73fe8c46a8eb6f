package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botboy223/printpron/internal/domain"
	"github.com/botboy223/printpron/internal/domain/entity"
	"github.com/botboy223/printpron/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Open
// ──────────────────────────────────────────────────────────────────────────────

// TestOpen_DirectorioVacioArrancaVacio un directorio sin documentos arranca
// con todos los registros vacíos, sin error.
func TestOpen_DirectorioVacioArrancaVacio(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	products, err := store.Catalog().All()
	require.NoError(t, err)
	assert.Empty(t, products)

	stock, err := store.Stock().All()
	require.NoError(t, err)
	assert.Empty(t, stock)

	history, err := store.SaleHistory().All()
	require.NoError(t, err)
	assert.Empty(t, history)

	cfg, err := store.PaymentConfig().Get()
	require.NoError(t, err)
	assert.False(t, cfg.IsComplete())
}

func TestOpen_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "datos")
	_, err := localstore.Open(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestOpen_DocumentoCorruptoDetieneElArranque un JSON malformado no se
// reinicia en silencio: arrancar con valores por defecto destruiría el
// catálogo, así que Open falla con ErrMalformedRecord.
func TestOpen_DocumentoCorruptoDetieneElArranque(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{truncado"), 0o644))

	_, err := localstore.Open(dir)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestOpen_HistorialCorruptoTambienDetiene(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte(`"no es un arreglo"`), 0o644))

	_, err := localstore.Open(dir)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip por disco: lo escrito por un almacén lo lee otro.
// ──────────────────────────────────────────────────────────────────────────────

func TestRoundTrip_Catalogo(t *testing.T) {
	dir := t.TempDir()

	first, err := localstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, first.Catalog().Upsert(entity.Product{
		Code: "123456", Name: "Pen", Price: decimal.RequireFromString("10.00"),
	}))

	second, err := localstore.Open(dir)
	require.NoError(t, err)
	p, err := second.Catalog().Get("123456")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Pen", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("10.00")))
}

// TestRoundTrip_OrdenDelLibro el libro de inventario es un arreglo: el orden
// de primer guardado sobrevive al round-trip, y re-guardar un código lo deja
// en su posición original.
func TestRoundTrip_OrdenDelLibro(t *testing.T) {
	dir := t.TempDir()

	first, err := localstore.Open(dir)
	require.NoError(t, err)
	for _, e := range []entity.StockEntry{
		{Code: "C", Name: "Tercero", Price: decimal.NewFromInt(3), Quantity: 3},
		{Code: "A", Name: "Primero", Price: decimal.NewFromInt(1), Quantity: 1},
		{Code: "B", Name: "Segundo", Price: decimal.NewFromInt(2), Quantity: 2},
	} {
		require.NoError(t, first.Stock().Upsert(e))
	}
	// re-guardar "A" no lo mueve al final
	require.NoError(t, first.Stock().Upsert(entity.StockEntry{
		Code: "A", Name: "Primero", Price: decimal.NewFromInt(1), Quantity: 9,
	}))

	second, err := localstore.Open(dir)
	require.NoError(t, err)
	entries, err := second.Stock().All()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{entries[0].Code, entries[1].Code, entries[2].Code})
	assert.Equal(t, 9, entries[1].Quantity)
}

func TestRoundTrip_Historial(t *testing.T) {
	dir := t.TempDir()

	first, err := localstore.Open(dir)
	require.NoError(t, err)
	rec := entity.SaleRecord{
		ID:        "venta-1",
		Timestamp: time.Now().Truncate(time.Second),
		Total:     decimal.RequireFromString("60.00"),
		Lines:     []entity.CartLine{{Code: "111", Quantity: 2}},
	}
	require.NoError(t, first.SaleHistory().Append(rec))

	second, err := localstore.Open(dir)
	require.NoError(t, err)
	history, err := second.SaleHistory().All()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "venta-1", history[0].ID)
	assert.True(t, history[0].Total.Equal(rec.Total))
	require.Len(t, history[0].Lines, 1)
	assert.Equal(t, 2, history[0].Lines[0].Quantity)
}

func TestRoundTrip_ConfiguracionDePago(t *testing.T) {
	dir := t.TempDir()

	first, err := localstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, first.PaymentConfig().Save(entity.PaymentConfig{
		PayeeID: "tienda@upi", PayeeName: "Mi Tienda", Note: "nota",
	}))

	second, err := localstore.Open(dir)
	require.NoError(t, err)
	cfg, err := second.PaymentConfig().Get()
	require.NoError(t, err)
	assert.Equal(t, "tienda@upi", cfg.PayeeID)
	assert.True(t, cfg.IsComplete())
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de copias
// ──────────────────────────────────────────────────────────────────────────────

// TestAll_DevuelveCopia mutar el slice devuelto no altera el estado interno.
func TestAll_DevuelveCopia(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Stock().Upsert(entity.StockEntry{
		Code: "A", Name: "Articulo", Price: decimal.NewFromInt(1), Quantity: 5,
	}))

	entries, err := store.Stock().All()
	require.NoError(t, err)
	entries[0].Quantity = 99

	again, err := store.Stock().All()
	require.NoError(t, err)
	assert.Equal(t, 5, again[0].Quantity)
}

// TestGet_DevuelveCopia mutar el puntero devuelto no altera el libro hasta
// el próximo Upsert.
func TestGet_DevuelveCopia(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Stock().Upsert(entity.StockEntry{
		Code: "A", Name: "Articulo", Price: decimal.NewFromInt(1), Quantity: 5,
	}))

	e, err := store.Stock().Get("A")
	require.NoError(t, err)
	e.Quantity = 99

	again, err := store.Stock().Get("A")
	require.NoError(t, err)
	assert.Equal(t, 5, again.Quantity)
}

// TestWrite_NoDejaTemporales la escritura atómica no deja archivos .tmp.
func TestWrite_NoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Catalog().Upsert(entity.Product{
		Code: "1", Name: "Pen", Price: decimal.NewFromInt(10),
	}))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
