package entity

import "github.com/shopspring/decimal"

// Product representa un producto de la cafetería tal como vive en la tabla
// productos. Stock es la cantidad total en la unidad base del producto
// (típicamente gramos); UnitWeight es lo que pesa un paquete cerrado.
type Product struct {
	ID           int64
	Name         string          // nombre, único en el catálogo
	Description  string          // descripcion
	Price        decimal.Decimal // precio de venta
	Stock        decimal.Decimal // stock total en unidad base, >= 0
	CategoryID   int64           // id_categoria (FK a categorias)
	CategoryName string          // nombre_categoria, solo en lecturas con JOIN
	UnitMeasure  string          // unidad_medida, ej. "g"
	UnitWeight   decimal.Decimal // peso_unidad de un paquete cerrado
	StockMin     decimal.Decimal // stock_minimo
	StockMax     decimal.Decimal // stock_maximo
}
