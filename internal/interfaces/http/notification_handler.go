package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/notification"
	"github.com/easycashflows/api/pkg/validation"
)

// NotificationHandler gestisce la configurazione dei canali di notifica.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler costruisce l'handler.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Save godoc
// @Summary      Salva impostazioni di notifica
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveNotificationSettingsRequest  true  "Canali e credenziali"
// @Success      200   {object}  dto.NotificationSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/notifications [put]
func (h *NotificationHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveNotificationSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.SaveSettings(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Impostazioni di notifica correnti
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.NotificationSettingsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/notifications [get]
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TestSend godoc
// @Summary      Invia un messaggio di prova sul canale scelto
// @Tags         notifications
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  dto.TestNotificationRequest  true  "Canale e destinatario"
// @Success      200   {object}  dto.OKResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/settings/notifications/test [post]
func (h *NotificationHandler) TestSend(c *fiber.Ctx) error {
	var in dto.TestNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	if err := h.uc.TestSend(c.Context(), GetCompanyID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true, Message: "messaggio di prova inviato"})
}
