package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/domain"
	"github.com/cafeteria-java/inventario/internal/domain/entity"
	"github.com/cafeteria-java/inventario/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, más la actualización de
// stock que usa el editor de inventario.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// List lista todos los productos con su nombre de categoría.
func (uc *ProductUseCase) List() ([]*dto.Producto, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.Producto, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProduct(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. Retorna (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.Producto, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(p), nil
}

// Create crea un producto. Nombre, precio y categoría son obligatorios; la
// categoría debe existir.
func (uc *ProductUseCase) Create(in dto.ProductoRequest) (int64, error) {
	if in.Nombre == "" || in.Precio == nil || in.CategoriaID == nil {
		return 0, fmt.Errorf("%w: nombre, precio e id_categoria son requeridos", domain.ErrInvalidInput)
	}
	cat, err := uc.categories.GetByID(*in.CategoriaID)
	if err != nil {
		return 0, err
	}
	if cat == nil {
		return 0, fmt.Errorf("%w: la categoría %d no existe", domain.ErrInvalidInput, *in.CategoriaID)
	}
	p := toProduct(in)
	if p.Stock.IsNegative() {
		return 0, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return uc.repo.Create(p)
}

// Update reemplaza los campos de un producto existente.
// Retorna (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.ProductoRequest) (*dto.Producto, error) {
	if in.Nombre == "" || in.Precio == nil || in.CategoriaID == nil {
		return nil, fmt.Errorf("%w: nombre, precio e id_categoria son requeridos", domain.ErrInvalidInput)
	}
	p := toProduct(in)
	p.ID = id
	if p.Stock.IsNegative() {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	found, err := uc.repo.Update(p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(updated), nil
}

// UpdateStock fija el stock total de un producto. El valor es una sola
// escritura incondicional: dos ediciones concurrentes compiten con semántica
// de última escritura gana (limitación aceptada del sistema).
func (uc *ProductUseCase) UpdateStock(id int64, stock decimal.Decimal) (bool, error) {
	if stock.IsNegative() {
		return false, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return uc.repo.UpdateStock(id, stock)
}

// Delete elimina un producto. Retorna false si no existía.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toProduct(in dto.ProductoRequest) *entity.Product {
	deref := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}
	return &entity.Product{
		Name:        in.Nombre,
		Description: in.Descripcion,
		Price:       deref(in.Precio),
		Stock:       deref(in.Stock),
		CategoryID:  derefInt(in.CategoriaID),
		UnitMeasure: in.UnidadMed,
		UnitWeight:  deref(in.PesoUnidad),
		StockMin:    deref(in.StockMin),
		StockMax:    deref(in.StockMax),
	}
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
