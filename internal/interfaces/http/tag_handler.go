package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/pkg/validation"
)

// TagHandler gestisce le etichette dei movimenti.
type TagHandler struct {
	uc *usecase.TagUseCase
}

// NewTagHandler costruisce l'handler.
func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{uc: uc}
}

// Create godoc
// @Summary      Crea etichetta
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTagRequest  true  "Dati"
// @Success      201   {object}  dto.TagResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
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
// @Summary      Dettaglio etichetta
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.TagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [get]
func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etichetta non trovata"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna etichetta
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "ID"
// @Param        body  body  dto.UpdateTagRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.TagResponse
// @Router       /api/tags/{id} [put]
func (h *TagHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTagRequest
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
// @Summary      Lista etichette
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TagListResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina etichetta
// @Tags         tags
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
