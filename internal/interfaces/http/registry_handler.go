package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/pkg/validation"
)

// CoreHandler gestisce le linee di business.
type CoreHandler struct {
	uc *usecase.CoreUseCase
}

// NewCoreHandler costruisce l'handler.
func NewCoreHandler(uc *usecase.CoreUseCase) *CoreHandler {
	return &CoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crea linea di business
// @Tags         cores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCoreRequest  true  "Dati"
// @Success      201   {object}  dto.CoreResponse
// @Router       /api/cores [post]
func (h *CoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCoreRequest
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
// @Summary      Dettaglio linea di business
// @Tags         cores
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.CoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cores/{id} [get]
func (h *CoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "linea di business non trovata"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna linea di business
// @Tags         cores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID"
// @Param        body  body  dto.UpdateCoreRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.CoreResponse
// @Router       /api/cores/{id} [put]
func (h *CoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCoreRequest
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
// @Summary      Linee di business dell'azienda
// @Tags         cores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CoreListResponse
// @Router       /api/cores [get]
func (h *CoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c), pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina linea di business
// @Tags         cores
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cores/{id} [delete]
func (h *CoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// ResourceHandler gestisce i collaboratori.
type ResourceHandler struct {
	uc *usecase.ResourceUseCase
}

// NewResourceHandler costruisce l'handler.
func NewResourceHandler(uc *usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// Create godoc
// @Summary      Crea collaboratore
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateResourceRequest  true  "Dati"
// @Success      201   {object}  dto.ResourceResponse
// @Router       /api/resources [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResourceRequest
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
// @Summary      Dettaglio collaboratore
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.ResourceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resources/{id} [get]
func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "collaboratore non trovato"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna collaboratore
// @Tags         resources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.UpdateResourceRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.ResourceResponse
// @Router       /api/resources/{id} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateResourceRequest
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
// @Summary      Collaboratori dell'azienda
// @Tags         resources
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ResourceListResponse
// @Router       /api/resources [get]
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c), pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina collaboratore
// @Tags         resources
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// OfficeHandler gestisce le sedi operative.
type OfficeHandler struct {
	uc *usecase.OfficeUseCase
}

// NewOfficeHandler costruisce l'handler.
func NewOfficeHandler(uc *usecase.OfficeUseCase) *OfficeHandler {
	return &OfficeHandler{uc: uc}
}

// Create godoc
// @Summary      Crea sede
// @Tags         offices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOfficeRequest  true  "Dati"
// @Success      201   {object}  dto.OfficeResponse
// @Router       /api/offices [post]
func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfficeRequest
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
// @Summary      Dettaglio sede
// @Tags         offices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OfficeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offices/{id} [get]
func (h *OfficeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sede non trovata"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna sede
// @Tags         offices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID"
// @Param        body  body  dto.UpdateOfficeRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.OfficeResponse
// @Router       /api/offices/{id} [put]
func (h *OfficeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOfficeRequest
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
// @Summary      Sedi dell'azienda
// @Tags         offices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OfficeListResponse
// @Router       /api/offices [get]
func (h *OfficeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c), pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina sede
// @Tags         offices
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/offices/{id} [delete]
func (h *OfficeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
