package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/domain"
	"github.com/cafeteria-java/inventario/internal/domain/entity"
	"github.com/cafeteria-java/inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id_producto, p.nombre, p.descripcion, p.precio, p.stock,
	p.id_categoria, COALESCE(c.nombre_categoria, ''), p.unidad_medida, p.peso_unidad,
	p.stock_minimo, p.stock_maximo`

// Create persiste un nuevo producto y retorna el id asignado.
func (r *ProductRepo) Create(p *entity.Product) (int64, error) {
	query := `
		INSERT INTO productos (nombre, descripcion, precio, stock, id_categoria, unidad_medida, peso_unidad, stock_minimo, stock_maximo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_producto`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.Name, p.Description, p.Price, p.Stock, p.CategoryID,
		p.UnitMeasure, p.UnitWeight, p.StockMin, p.StockMax,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID con su nombre de categoría.
// Retorna (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos p
		LEFT JOIN categorias c ON p.id_categoria = c.id_categoria
		WHERE p.id_producto = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.CategoryName, &p.UnitMeasure, &p.UnitWeight,
		&p.StockMin, &p.StockMax,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista todos los productos ordenados por categoría y nombre, igual que
// la vista de inventario original.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos p
		LEFT JOIN categorias c ON p.id_categoria = c.id_categoria
		ORDER BY c.nombre_categoria, p.nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CategoryID, &p.CategoryName, &p.UnitMeasure, &p.UnitWeight,
			&p.StockMin, &p.StockMax); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos editables de un producto.
// Retorna false si el producto no existe.
func (r *ProductRepo) Update(p *entity.Product) (bool, error) {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, stock = $5, id_categoria = $6,
			unidad_medida = $7, peso_unidad = $8, stock_minimo = $9, stock_maximo = $10
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID,
		p.UnitMeasure, p.UnitWeight, p.StockMin, p.StockMax,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// UpdateStock fija el stock total con una sola escritura incondicional, sin
// chequeo de concurrencia (última escritura gana, como en el sistema
// original). Retorna false si el producto no existe.
func (r *ProductRepo) UpdateStock(id int64, stock decimal.Decimal) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2 WHERE id_producto = $1`,
		id, stock,
	)
	if err != nil {
		return false, fmt.Errorf("update stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por ID. Retorna false si no existía.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id_producto = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
