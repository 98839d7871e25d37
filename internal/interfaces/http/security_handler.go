package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/pkg/validation"
)

// SecurityHandler gestisce le impostazioni di sicurezza (solo admin).
type SecurityHandler struct {
	uc *usecase.SecurityUseCase
}

// NewSecurityHandler costruisce l'handler.
func NewSecurityHandler(uc *usecase.SecurityUseCase) *SecurityHandler {
	return &SecurityHandler{uc: uc}
}

// Get godoc
// @Summary      Impostazioni di sicurezza correnti
// @Tags         security
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SecuritySettingsResponse
// @Router       /api/settings/security [get]
func (h *SecurityHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Aggiorna le impostazioni di sicurezza
// @Tags         security
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveSecuritySettingsRequest  true  "Limiti e timeout"
// @Success      200   {object}  dto.SecuritySettingsResponse
// @Router       /api/settings/security [put]
func (h *SecurityHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSecuritySettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
