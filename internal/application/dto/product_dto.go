package dto

import (
	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/domain/entity"
)

// ProductoRequest entrada para crear o reemplazar un producto.
// Los campos numéricos son punteros para distinguir "ausente" de cero.
type ProductoRequest struct {
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *decimal.Decimal `json:"stock"`
	CategoriaID *int64           `json:"id_categoria"`
	UnidadMed   string           `json:"unidad_medida"`
	PesoUnidad  *decimal.Decimal `json:"peso_unidad"`
	StockMin    *decimal.Decimal `json:"stock_minimo"`
	StockMax    *decimal.Decimal `json:"stock_maximo"`
}

// StockRequest entrada del PATCH de stock. Stock es puntero: si falta en el
// cuerpo la petición es un 400, no un stock cero.
type StockRequest struct {
	Stock *decimal.Decimal `json:"stock"`
}

// Producto salida de un producto, con el nombre de categoría del JOIN.
type Producto struct {
	ID          int64           `json:"id_producto"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       decimal.Decimal `json:"stock"`
	CategoriaID int64           `json:"id_categoria"`
	Categoria   string          `json:"nombre_categoria,omitempty"`
	UnidadMed   string          `json:"unidad_medida"`
	PesoUnidad  decimal.Decimal `json:"peso_unidad"`
	StockMin    decimal.Decimal `json:"stock_minimo"`
	StockMax    decimal.Decimal `json:"stock_maximo"`
}

// FromProduct convierte la entidad al DTO de salida.
func FromProduct(p *entity.Product) *Producto {
	if p == nil {
		return nil
	}
	return &Producto{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      p.Price,
		Stock:       p.Stock,
		CategoriaID: p.CategoryID,
		Categoria:   p.CategoryName,
		UnidadMed:   p.UnitMeasure,
		PesoUnidad:  p.UnitWeight,
		StockMin:    p.StockMin,
		StockMax:    p.StockMax,
	}
}
