// Package quantity implementa el modelo de cantidades del inventario:
// la conversión entre el stock total de un producto y su descomposición
// en "unidades cerradas + cantidad abierta", y la validación de esa
// descomposición contra los límites configurados por producto.
//
// Toda la aritmética usa decimal para que el residuo quede siempre en
// [0, pesoUnidad) sin los errores de redondeo del módulo en coma flotante.
package quantity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores del modelo de cantidades.
var (
	ErrUnitWeightInvalid = errors.New("peso de unidad inválido")
	ErrStockNegative     = errors.New("stock negativo")
	ErrUnitsOutOfRange   = errors.New("unidades fuera de rango")
	ErrOpenOutOfRange    = errors.New("cantidad abierta fuera de rango")
	ErrInvalidAmount     = errors.New("cantidad no numérica")
)

// Config son los límites de edición de un producto más su estado actual.
// Se construye de forma transitoria al abrir una edición y se descarta al
// terminarla; nunca se persiste.
type Config struct {
	UnitLabel  string          // unidad de medida, ej. "g"
	UnitWeight decimal.Decimal // peso de un paquete cerrado, > 0
	MinUnits   int64           // mínimo de unidades cerradas
	MaxUnits   int64           // máximo de unidades cerradas
	MinOpen    decimal.Decimal // mínimo de cantidad abierta
	MaxOpen    decimal.Decimal // máximo de cantidad abierta
	Stock      decimal.Decimal // stock total actual
}

// Decompose separa un stock total en unidades cerradas y cantidad abierta.
// Es una función pura de sus dos argumentos: no depende de descomposiciones
// anteriores. Garantiza units >= 0 y open en [0, unitWeight).
func Decompose(stock, unitWeight decimal.Decimal) (int64, decimal.Decimal, error) {
	if !unitWeight.IsPositive() {
		return 0, decimal.Zero, fmt.Errorf("%w: %s", ErrUnitWeightInvalid, unitWeight)
	}
	if stock.IsNegative() {
		return 0, decimal.Zero, fmt.Errorf("%w: %s", ErrStockNegative, stock)
	}

	units := stock.Div(unitWeight).Floor()

	// El cociente decimal se redondea a precisión finita; en los bordes
	// (stock múltiplo casi exacto del peso) el Floor puede quedar una unidad
	// arriba o abajo. Se corrige para que el residuo caiga en [0, unitWeight).
	open := stock.Sub(units.Mul(unitWeight))
	if open.IsNegative() {
		units = units.Sub(decimal.NewFromInt(1))
		open = stock.Sub(units.Mul(unitWeight))
	}
	if open.GreaterThanOrEqual(unitWeight) {
		units = units.Add(decimal.NewFromInt(1))
		open = stock.Sub(units.Mul(unitWeight))
	}
	if units.IsNegative() {
		units = decimal.Zero
		open = stock
	}
	return units.IntPart(), open, nil
}

// Recompose reconstruye el stock total a partir de la descomposición.
// Es la inversa exacta de Decompose para cualquier salida válida de éste.
func Recompose(units int64, open, unitWeight decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(units).Mul(unitWeight).Add(open)
}

// Validate comprueba la descomposición contra los límites de cfg.
// Revisa primero las unidades y retorna en la primera violación, de modo
// que el mensaje que ve el usuario es determinista.
func Validate(units int64, open decimal.Decimal, cfg Config) error {
	if units < cfg.MinUnits || units > cfg.MaxUnits {
		return fmt.Errorf("%w: deben estar entre %d y %d", ErrUnitsOutOfRange, cfg.MinUnits, cfg.MaxUnits)
	}
	if open.LessThan(cfg.MinOpen) || open.GreaterThan(cfg.MaxOpen) {
		return fmt.Errorf("%w: debe estar entre %s y %s %s",
			ErrOpenOutOfRange, cfg.MinOpen, cfg.MaxOpen, cfg.UnitLabel)
	}
	return nil
}

// ParseAmount convierte la entrada del usuario en un decimal no negativo.
// Una entrada vacía o no numérica es un error explícito: nunca se degrada
// en silencio a cero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: vacía", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q es negativa", ErrInvalidAmount, s)
	}
	return d, nil
}
