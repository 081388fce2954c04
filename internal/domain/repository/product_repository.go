package repository

import (
	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y demás lecturas retornan (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) (int64, error)
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) (bool, error)
	UpdateStock(id int64, stock decimal.Decimal) (bool, error)
	Delete(id int64) (bool, error)
}
