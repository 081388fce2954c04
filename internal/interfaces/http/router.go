package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
}

// Router registra las rutas de la API y el fallback 404.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	productos := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Patch("/:id/stock", productHandler.UpdateStock)
	productos.Delete("/:id", productHandler.Delete)

	categorias := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categorias.Get("/", categoryHandler.List)

	// Cualquier ruta no registrada responde el sobre de 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Ruta no encontrada"))
	})
}
