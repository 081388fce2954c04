package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeteria-java/inventario/internal/application/catalog"
	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/domain"
)

type fakeFetcher struct {
	productos []*dto.Producto
	err       error
}

func (f *fakeFetcher) ListProducts(ctx context.Context) ([]*dto.Producto, error) {
	return f.productos, f.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func cargado(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New(&fakeFetcher{productos: []*dto.Producto{
		{ID: 1, Nombre: "Café Molido", Stock: dec("1250"), UnidadMed: "g",
			PesoUnidad: dec("500"), StockMin: dec("0"), StockMax: dec("5000")},
		{ID: 2, Nombre: "Té Verde", Stock: dec("300"), UnidadMed: "g",
			PesoUnidad: dec("100")},
	}})
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestFindByName_SinAcentosNiMayusculas(t *testing.T) {
	c := cargado(t)
	for _, nombre := range []string{"Café Molido", "cafe molido", "CAFE MOLIDO", "  Café Molido  "} {
		p, err := c.FindByName(nombre)
		require.NoError(t, err, "búsqueda %q", nombre)
		assert.Equal(t, int64(1), p.ID)
	}
}

func TestFindByName_NoEncontrado(t *testing.T) {
	c := cargado(t)
	_, err := c.FindByName("Chocolate")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByID(t *testing.T) {
	c := cargado(t)
	p, err := c.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Té Verde", p.Nombre)

	_, err = c.FindByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfigFor_ProductoCompleto(t *testing.T) {
	c := cargado(t)
	p, _ := c.FindByID(1)
	cfg := c.ConfigFor(p)

	assert.Equal(t, "g", cfg.UnitLabel)
	assert.True(t, cfg.UnitWeight.Equal(dec("500")))
	assert.EqualValues(t, 0, cfg.MinUnits)
	assert.EqualValues(t, 20, cfg.MaxUnits)
	assert.True(t, cfg.MinOpen.IsZero())
	assert.True(t, cfg.MaxOpen.Equal(dec("5000")))
	assert.True(t, cfg.Stock.Equal(dec("1250")))
}

// TestConfigFor_Defaults cubre la política por defecto: peso de unidad 1
// cuando falta, unidad "g" y tope abierto 5000 cuando el producto no define
// stock_maximo.
func TestConfigFor_Defaults(t *testing.T) {
	c := cargado(t)
	cfg := c.ConfigFor(&dto.Producto{ID: 9, Nombre: "Azúcar", Stock: dec("5.5")})

	assert.True(t, cfg.UnitWeight.Equal(decimal.NewFromInt(1)), "peso por defecto = 1")
	assert.Equal(t, "g", cfg.UnitLabel)
	assert.True(t, cfg.MaxOpen.Equal(dec("5000")))
	assert.True(t, cfg.MinOpen.IsZero())
}

func TestApplyStock_ActualizaCopiaLocal(t *testing.T) {
	c := cargado(t)
	c.ApplyStock(1, dec("1600"))
	p, _ := c.FindByID(1)
	assert.True(t, p.Stock.Equal(dec("1600")))
}

func TestLoad_PropagaErrorDelCliente(t *testing.T) {
	c := catalog.New(&fakeFetcher{err: domain.ErrUnavailable})
	err := c.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
