package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/application/usecase"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (buscar, filtrar, ordenar, paginar)
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Término de búsqueda"
// @Param        category  query  string  false  "Categoría exacta (P o B)"
// @Param        state     query  string  false  "Estado (A o I; vacío = todos)"
// @Param        sort      query  string  false  "Columna de orden"
// @Param        dir       query  string  false  "asc o desc"  default(asc)
// @Param        page      query  int     false  "Página (base 0)"
// @Param        size      query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /v1/api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de listado inválidos")
	}
	out, err := h.uc.List(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListByState godoc
// @Summary      Listar productos por estado
// @Tags         products
// @Produce      json
// @Param        state  path  string  true  "Estado (A o I)"
// @Success      200  {array}  dto.ProductResponse
// @Router       /v1/api/products/state/{state} [get]
func (h *ProductHandler) ListByState(c *fiber.Ctx) error {
	state := c.Params("state")
	if state != entity.StateActive && state != entity.StateInactive {
		return badRequest(c, "INVALID_STATE", "el estado debe ser A o I")
	}
	out, err := h.uc.ListByState(state)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /v1/api/products/save [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SaveProductRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja lógica de producto (estado a Inactivo)
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/products/delete/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar producto (estado a Activo)
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/products/restore/{id} [put]
func (h *ProductHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReportPDF godoc
// @Summary      Reporte PDF de productos activos
// @Tags         products
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /v1/api/products/pdf [get]
func (h *ProductHandler) ReportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(data)
}
