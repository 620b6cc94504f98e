package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/application/usecase"
)

// PreferenceHandler maneja las preferencias de interfaz por dueño y clave.
type PreferenceHandler struct {
	uc *usecase.PreferenceUseCase
}

// NewPreferenceHandler construye el handler.
func NewPreferenceHandler(uc *usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener una preferencia de interfaz
// @Tags         preferences
// @Produce      json
// @Param        owner  path  string  true  "Dueño de la preferencia"
// @Param        key    path  string  true  "Clave"
// @Success      200  {object}  dto.PreferenceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/api/preferences/{owner}/{key} [get]
func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("owner"), c.Params("key"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Fijar una preferencia de interfaz
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        owner  path  string  true  "Dueño de la preferencia"
// @Param        key    path  string  true  "Clave"
// @Param        body   body  dto.SetPreferenceRequest  true  "Valor"
// @Success      200  {object}  dto.PreferenceResponse
// @Router       /v1/api/preferences/{owner}/{key} [put]
func (h *PreferenceHandler) Set(c *fiber.Ctx) error {
	var in dto.SetPreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Set(c.Params("owner"), c.Params("key"), in.Value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
