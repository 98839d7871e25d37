package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/calendarsync"
	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/pkg/validation"
)

// CalendarHandler gestisce integrazioni OAuth, eventi e sincronizzazione.
type CalendarHandler struct {
	uc *calendarsync.UseCase
}

// NewCalendarHandler costruisce l'handler.
func NewCalendarHandler(uc *calendarsync.UseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// Connect godoc
// @Summary      Avvia il collegamento OAuth con un provider calendario
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        provider  path  string  true  "google o outlook"
// @Success      200  {object}  dto.CalendarConnectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/{provider}/connect [get]
func (h *CalendarHandler) Connect(c *fiber.Ctx) error {
	out, err := h.uc.Connect(GetUserID(c), c.Params("provider"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Callback godoc
// @Summary      Callback OAuth del provider (rotta pubblica)
// @Tags         calendar
// @Produce      json
// @Param        provider  path   string  true  "google o outlook"
// @Param        state     query  string  true  "State firmato emesso da connect"
// @Param        code      query  string  true  "Authorization code"
// @Success      200  {object}  dto.CalendarIntegrationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/calendar/{provider}/callback [get]
func (h *CalendarHandler) Callback(c *fiber.Ctx) error {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		return badRequest(c, "INVALID_QUERY", "state e code sono obbligatori")
	}
	out, err := h.uc.Callback(c.Context(), c.Params("provider"), state, code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Integrations godoc
// @Summary      Stato dei collegamenti calendario dell'utente
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CalendarIntegrationResponse
// @Router       /api/calendar/integrations [get]
func (h *CalendarHandler) Integrations(c *fiber.Ctx) error {
	out, err := h.uc.Integrations(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Disconnect godoc
// @Summary      Scollega un provider calendario
// @Tags         calendar
// @Security     BearerAuth
// @Param        provider  path  string  true  "google o outlook"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/{provider} [delete]
func (h *CalendarHandler) Disconnect(c *fiber.Ctx) error {
	if err := h.uc.Disconnect(GetUserID(c), c.Params("provider")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// CreateEvent godoc
// @Summary      Crea evento calendario
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCalendarEventRequest  true  "Dati evento"
// @Success      201   {object}  dto.CalendarEventResponse
// @Router       /api/calendar/events [post]
func (h *CalendarHandler) CreateEvent(c *fiber.Ctx) error {
	var in dto.CreateCalendarEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.CreateEvent(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEvent godoc
// @Summary      Aggiorna evento calendario
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "ID evento"
// @Param        body  body  dto.UpdateCalendarEventRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.CalendarEventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calendar/events/{id} [put]
func (h *CalendarHandler) UpdateEvent(c *fiber.Ctx) error {
	var in dto.UpdateCalendarEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.UpdateEvent(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteEvent godoc
// @Summary      Elimina evento calendario
// @Tags         calendar
// @Security     BearerAuth
// @Param        id  path  string  true  "ID evento"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/events/{id} [delete]
func (h *CalendarHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.uc.DeleteEvent(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// ListEvents godoc
// @Summary      Eventi in una finestra temporale
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  false  "Data inizio (default: -30 giorni)"
// @Param        to    query  string  false  "Data fine (default: +90 giorni)"
// @Success      200   {object}  dto.CalendarEventListResponse
// @Router       /api/calendar/events [get]
func (h *CalendarHandler) ListEvents(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 90)
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "from non valido")
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "to non valido")
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	out, err := h.uc.ListEvents(GetUserID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sync godoc
// @Summary      Sincronizzazione bidirezionale con il provider
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        provider  path  string  true  "google o outlook"
// @Success      200  {object}  dto.CalendarSyncResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/{provider}/sync [post]
func (h *CalendarHandler) Sync(c *fiber.Ctx) error {
	out, err := h.uc.Sync(c.Context(), GetUserID(c), GetCompanyID(c), c.Params("provider"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
