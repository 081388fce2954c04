// Package catalog mantiene la copia en memoria del catálogo de productos que
// usa el editor de inventario. Es un objeto propio de la sesión, no un estado
// global: quien lo necesita lo recibe por referencia.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/domain/quantity"
	"github.com/cafeteria-java/inventario/internal/domain"
)

// Política por defecto de límites de edición (§ configuración de cantidades).
const (
	DefaultMinUnits  = 0
	DefaultMaxUnits  = 20
	defaultUnitLabel = "g"
)

// DefaultMaxOpen es el tope de cantidad abierta cuando el producto no define
// stock_maximo.
var DefaultMaxOpen = decimal.NewFromInt(5000)

// ProductFetcher es el puerto hacia el cliente de la API de stock.
type ProductFetcher interface {
	ListProducts(ctx context.Context) ([]*dto.Producto, error)
}

// Catalog es la copia en memoria de los productos del backend. Tras una
// actualización exitosa se parchea localmente con ApplyStock; no se vuelve a
// consultar el backend, así que puede quedar desfasado frente a otros
// clientes concurrentes (limitación aceptada).
type Catalog struct {
	api       ProductFetcher
	productos []*dto.Producto
}

// New construye el catálogo sin cargarlo; llamar Load antes de usarlo.
func New(api ProductFetcher) *Catalog {
	return &Catalog{api: api}
}

// Load trae la lista completa de productos del backend.
func (c *Catalog) Load(ctx context.Context) error {
	productos, err := c.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	c.productos = productos
	return nil
}

// Len cantidad de productos cargados.
func (c *Catalog) Len() int { return len(c.productos) }

// Products devuelve la lista cargada.
func (c *Catalog) Products() []*dto.Producto { return c.productos }

// FindByName busca un producto por nombre sin distinguir mayúsculas ni
// acentos ("Café Molido" == "cafe molido").
func (c *Catalog) FindByName(nombre string) (*dto.Producto, error) {
	clave := normalizar(nombre)
	for _, p := range c.productos {
		if normalizar(p.Nombre) == clave {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, nombre)
}

// FindByID busca un producto por su identificador.
func (c *Catalog) FindByID(id int64) (*dto.Producto, error) {
	for _, p := range c.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
}

// ConfigFor arma la configuración de cantidades de un producto aplicando la
// política por defecto: peso de unidad 1 si falta o no es positivo, unidades
// 0..20, cantidad abierta entre stock_minimo y stock_maximo (0..5000 si el
// producto no los define).
func (c *Catalog) ConfigFor(p *dto.Producto) quantity.Config {
	peso := p.PesoUnidad
	if !peso.IsPositive() {
		peso = decimal.NewFromInt(1)
	}
	label := p.UnidadMed
	if label == "" {
		label = defaultUnitLabel
	}
	minOpen := p.StockMin
	if minOpen.IsNegative() {
		minOpen = decimal.Zero
	}
	maxOpen := p.StockMax
	if !maxOpen.IsPositive() {
		maxOpen = DefaultMaxOpen
	}
	stock := p.Stock
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	return quantity.Config{
		UnitLabel:  label,
		UnitWeight: peso,
		MinUnits:   DefaultMinUnits,
		MaxUnits:   DefaultMaxUnits,
		MinOpen:    minOpen,
		MaxOpen:    maxOpen,
		Stock:      stock,
	}
}

// ApplyStock actualiza la copia local tras un commit exitoso en el backend.
func (c *Catalog) ApplyStock(id int64, stock decimal.Decimal) {
	for _, p := range c.productos {
		if p.ID == id {
			p.Stock = stock
			return
		}
	}
}

var sinAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizar(s string) string {
	limpio, _, err := transform.String(sinAcentos, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}
