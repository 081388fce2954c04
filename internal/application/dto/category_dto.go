package dto

import "github.com/cafeteria-java/inventario/internal/domain/entity"

// Categoria salida de una categoría.
type Categoria struct {
	ID     int64  `json:"id_categoria"`
	Nombre string `json:"nombre_categoria"`
}

// FromCategory convierte la entidad al DTO de salida.
func FromCategory(c *entity.Category) *Categoria {
	if c == nil {
		return nil
	}
	return &Categoria{ID: c.ID, Nombre: c.Name}
}
