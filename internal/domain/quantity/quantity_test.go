package quantity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeteria-java/inventario/internal/domain/quantity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Decompose — vectores exactos
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestDecompose_CafeMolido es el vector de referencia del sistema: una bolsa
// de café de 500 g con 1250 g en stock son 2 bolsas cerradas y 250 g sueltos.
func TestDecompose_CafeMolido(t *testing.T) {
	units, open, err := quantity.Decompose(dec("1250"), dec("500"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), units)
	assert.True(t, open.Equal(dec("250")), "abierto = %s, esperaba 250", open)
}

// TestDecompose_MultiploExacto verifica que un stock múltiplo exacto del peso
// produce abierto = 0, nunca (unidades-1, pesoUnidad).
func TestDecompose_MultiploExacto(t *testing.T) {
	units, open, err := quantity.Decompose(dec("6"), dec("2"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), units)
	assert.True(t, open.IsZero(), "abierto = %s, esperaba 0", open)
}

func TestDecompose_StockCero(t *testing.T) {
	units, open, err := quantity.Decompose(decimal.Zero, dec("500"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), units)
	assert.True(t, open.IsZero())
}

// TestDecompose_PesoUno cubre la degeneración con peso_unidad = 1 (el valor
// por defecto cuando la configuración no lo trae): parte entera + fracción.
func TestDecompose_PesoUno(t *testing.T) {
	units, open, err := quantity.Decompose(dec("5.5"), dec("1"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), units)
	assert.True(t, open.Equal(dec("0.5")), "abierto = %s, esperaba 0.5", open)
}

// TestDecompose_FraccionesProblematicas usa pesos que en float64 producen un
// módulo igual al peso o ligeramente negativo; con decimal el residuo debe
// quedar siempre en [0, peso).
func TestDecompose_FraccionesProblematicas(t *testing.T) {
	cases := []struct {
		nombre string
		stock  string
		peso   string
	}{
		{"decimales binariamente inexactos", "0.3", "0.1"},
		{"stock justo bajo el múltiplo", "599.99", "200"},
		{"stock justo sobre el múltiplo", "600.01", "200"},
		{"peso con céntimos", "10.05", "0.15"},
		{"stock menor que el peso", "120", "500"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			stock, peso := dec(tc.stock), dec(tc.peso)
			units, open, err := quantity.Decompose(stock, peso)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, units, int64(0), "unidades nunca negativas")
			assert.False(t, open.IsNegative(), "abierto = %s no puede ser negativo", open)
			assert.True(t, open.LessThan(peso), "abierto = %s debe ser < peso %s", open, peso)
		})
	}
}

func TestDecompose_PesoInvalido(t *testing.T) {
	_, _, err := quantity.Decompose(dec("100"), decimal.Zero)
	assert.ErrorIs(t, err, quantity.ErrUnitWeightInvalid)

	_, _, err = quantity.Decompose(dec("100"), dec("-5"))
	assert.ErrorIs(t, err, quantity.ErrUnitWeightInvalid)
}

func TestDecompose_StockNegativo(t *testing.T) {
	_, _, err := quantity.Decompose(dec("-1"), dec("500"))
	assert.ErrorIs(t, err, quantity.ErrStockNegative)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recompose — ley de ida y vuelta
// ──────────────────────────────────────────────────────────────────────────────

// TestRecompose_IdaYVuelta verifica Recompose(Decompose(stock)) == stock con
// tolerancia de 0.01 (la precisión de dos decimales que usa toda la interfaz).
func TestRecompose_IdaYVuelta(t *testing.T) {
	tolerancia := dec("0.01")
	stocks := []string{"0", "0.01", "120", "250.5", "499.99", "500", "1250", "1600", "4999.99", "5000"}
	pesos := []string{"0.1", "1", "2", "250", "500", "333.33"}

	for _, s := range stocks {
		for _, p := range pesos {
			stock, peso := dec(s), dec(p)
			units, open, err := quantity.Decompose(stock, peso)
			require.NoError(t, err)

			vuelta := quantity.Recompose(units, open, peso)
			diff := vuelta.Sub(stock).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerancia),
				"stock=%s peso=%s: vuelta=%s difiere en %s", s, p, vuelta, diff)
		}
	}
}

func TestRecompose_VectorExacto(t *testing.T) {
	total := quantity.Recompose(3, dec("100"), dec("500"))
	assert.True(t, total.Equal(dec("1600")), "total = %s, esperaba 1600", total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate — límites y orden de los chequeos
// ──────────────────────────────────────────────────────────────────────────────

func politicaPorDefecto() quantity.Config {
	return quantity.Config{
		UnitLabel:  "g",
		UnitWeight: dec("500"),
		MinUnits:   0,
		MaxUnits:   20,
		MinOpen:    decimal.Zero,
		MaxOpen:    dec("5000"),
	}
}

func TestValidate_LimitesExactosValidos(t *testing.T) {
	cfg := politicaPorDefecto()
	assert.NoError(t, quantity.Validate(20, dec("5000"), cfg))
	assert.NoError(t, quantity.Validate(0, decimal.Zero, cfg))
}

func TestValidate_UnidadesFueraDeRango(t *testing.T) {
	cfg := politicaPorDefecto()
	err := quantity.Validate(21, decimal.Zero, cfg)
	assert.ErrorIs(t, err, quantity.ErrUnitsOutOfRange)

	err = quantity.Validate(-1, decimal.Zero, cfg)
	assert.ErrorIs(t, err, quantity.ErrUnitsOutOfRange)
}

func TestValidate_AbiertoFueraDeRango(t *testing.T) {
	cfg := politicaPorDefecto()
	err := quantity.Validate(0, dec("5001"), cfg)
	assert.ErrorIs(t, err, quantity.ErrOpenOutOfRange)
}

// TestValidate_UnidadesPrimero fija el orden de los chequeos: si ambas entradas
// están fuera de rango, el error que se reporta es el de unidades.
func TestValidate_UnidadesPrimero(t *testing.T) {
	cfg := politicaPorDefecto()
	err := quantity.Validate(21, dec("5001"), cfg)
	assert.ErrorIs(t, err, quantity.ErrUnitsOutOfRange)
	assert.NotErrorIs(t, err, quantity.ErrOpenOutOfRange)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseAmount — entrada explícita, sin ceros silenciosos
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAmount_Valida(t *testing.T) {
	d, err := quantity.ParseAmount(" 250.50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec("250.5")))
}

func TestParseAmount_Rechazos(t *testing.T) {
	for _, entrada := range []string{"", "   ", "abc", "12,5", "-3", "1.2.3"} {
		_, err := quantity.ParseAmount(entrada)
		assert.ErrorIs(t, err, quantity.ErrInvalidAmount, "entrada %q debe rechazarse", entrada)
	}
}
