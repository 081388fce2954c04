package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Failure      500  {object}  dto.Respuesta
// @Router       /api/categorias [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categorias, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar categorías")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	return c.JSON(dto.OK(categorias))
}
