package repository

import "github.com/cafeteria-java/inventario/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id int64) (*entity.Category, error)
}
