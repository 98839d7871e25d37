package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/pkg/validation"
)

// StatusHandler gestisce gli stati dei movimenti.
type StatusHandler struct {
	uc *usecase.StatusUseCase
}

// NewStatusHandler costruisce l'handler.
func NewStatusHandler(uc *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Create godoc
// @Summary      Crea stato
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReferenceRequest  true  "Dati"
// @Success      201   {object}  dto.ReferenceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/statuses [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Dettaglio stato
// @Tags         statuses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ReferenceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/statuses/{id} [get]
func (h *StatusHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stato non trovato"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna stato
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID"
// @Param        body  body  dto.UpdateReferenceRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.ReferenceResponse
// @Router       /api/statuses/{id} [put]
func (h *StatusHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lista stati
// @Tags         statuses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReferenceListResponse
// @Router       /api/statuses [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina stato
// @Tags         statuses
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/statuses/{id} [delete]
func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// ReasonHandler gestisce le causali dei movimenti.
type ReasonHandler struct {
	uc *usecase.ReasonUseCase
}

// NewReasonHandler costruisce l'handler.
func NewReasonHandler(uc *usecase.ReasonUseCase) *ReasonHandler {
	return &ReasonHandler{uc: uc}
}

// Create godoc
// @Summary      Crea causale
// @Tags         reasons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReferenceRequest  true  "Dati"
// @Success      201   {object}  dto.ReferenceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reasons [post]
func (h *ReasonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Dettaglio causale
// @Tags         reasons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ReferenceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reasons/{id} [get]
func (h *ReasonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "causale non trovata"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna causale
// @Tags         reasons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID"
// @Param        body  body  dto.UpdateReferenceRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.ReferenceResponse
// @Router       /api/reasons/{id} [put]
func (h *ReasonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lista causali
// @Tags         reasons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReferenceListResponse
// @Router       /api/reasons [get]
func (h *ReasonHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina causale
// @Tags         reasons
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reasons/{id} [delete]
func (h *ReasonHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
