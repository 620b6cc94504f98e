package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/application/usecase"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// UserHandler maneja las peticiones HTTP para User.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (buscar, filtrar, ordenar, paginar)
// @Tags         users
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Param        role    query  string  false  "Rol exacto"
// @Param        state   query  string  false  "Estado (A o I; vacío = todos)"
// @Param        sort    query  string  false  "Columna de orden"
// @Param        dir     query  string  false  "asc o desc"  default(asc)
// @Param        page    query  int     false  "Página (base 0)"
// @Param        size    query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.UserListResponse
// @Router       /v1/api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
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
// @Summary      Listar usuarios por estado
// @Tags         users
// @Produce      json
// @Param        state  path  string  true  "Estado (A o I)"
// @Success      200  {array}  dto.UserResponse
// @Router       /v1/api/users/estado/{state} [get]
func (h *UserHandler) ListByState(c *fiber.Ctx) error {
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
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveUserRequest  true  "Datos del usuario"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /v1/api/users/save [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveUserRequest
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
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.SaveUserRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/users/update/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja lógica de usuario (estado a Inactivo)
// @Tags         users
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/users/delete/{id} [patch]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar usuario (estado a Activo)
// @Tags         users
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/users/restore/{id} [patch]
func (h *UserHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReportPDF godoc
// @Summary      Reporte PDF de usuarios activos
// @Tags         users
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /v1/api/users/pdf [get]
func (h *UserHandler) ReportPDF(c *fiber.Ctx) error {
	data, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(data)
}

// UploadImage godoc
// @Summary      Subir imagen de perfil (multipart, campo "file")
// @Tags         users
// @Accept       multipart/form-data
// @Produce      plain
// @Param        id    path      string  true  "ID del usuario"
// @Param        file  formData  file    true  "Imagen"
// @Success      200  {string}  string  "ruta de la imagen"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/users/{id}/upload-image [post]
func (h *UserHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "se requiere el campo file")
	}
	content, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo leer el archivo")
	}
	defer content.Close()

	path, err := h.uc.UploadImage(c.UserContext(), c.Params("id"), fileHeader.Filename, content)
	if err != nil {
		return fail(c, err)
	}
	return c.SendString(path)
}

// GetImage godoc
// @Summary      Obtener imagen de perfil por nombre de archivo
// @Tags         users
// @Produce      octet-stream
// @Param        filename  path  string  true  "Nombre del archivo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/users/images/{filename} [get]
func (h *UserHandler) GetImage(c *fiber.Ctx) error {
	filename, err := url.PathUnescape(c.Params("filename"))
	if err != nil {
		return badRequest(c, "INVALID_FILENAME", "nombre de archivo inválido")
	}
	img, err := h.uc.OpenImage(c.UserContext(), filename)
	if err != nil {
		return fail(c, err)
	}
	return c.SendStream(img)
}
