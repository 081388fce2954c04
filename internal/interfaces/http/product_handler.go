package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/cafeteria-java/inventario/internal/application/dto"
	"github.com/cafeteria-java/inventario/internal/application/usecase"
	"github.com/cafeteria-java/inventario/internal/domain"
)

// Mensajes del contrato HTTP. El detalle de los errores internos se loguea,
// nunca se expone al cliente.
const (
	msgProductoNoEncontrado = "Producto no encontrado"
	msgErrorInterno         = "Error interno del servidor"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {object}  dto.Respuesta
// @Failure      500  {object}  dto.Respuesta
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	return c.JSON(dto.OK(productos))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	p, err := h.uc.GetByID(int64(id))
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("obtener producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msgProductoNoEncontrado))
	}
	return c.JSON(dto.OK(p))
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("ya existe un producto con ese nombre"))
		}
		log.Error().Err(err).Msg("crear producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Created(id, "Producto creado correctamente"))
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductoRequest  true  "Datos del producto"
// @Success      200   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	p, err := h.uc.Update(int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		log.Error().Err(err).Int("id", id).Msg("actualizar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msgProductoNoEncontrado))
	}
	return c.JSON(dto.OK(p))
}

// UpdateStock godoc
// @Summary      Actualizar stock de un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.StockRequest  true  "Nuevo stock total"
// @Success      200   {object}  dto.Respuesta
// @Failure      400   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("stock es requerido"))
	}
	found, err := h.uc.UpdateStock(int64(id), *in.Stock)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		log.Error().Err(err).Int("id", id).Msg("actualizar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msgProductoNoEncontrado))
	}
	return c.JSON(dto.OKMessage("Stock actualizado correctamente"))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("id inválido"))
	}
	found, err := h.uc.Delete(int64(id))
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("eliminar producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgErrorInterno))
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msgProductoNoEncontrado))
	}
	return c.JSON(dto.OKMessage("Producto eliminado correctamente"))
}
