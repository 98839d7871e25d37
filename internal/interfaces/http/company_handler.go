package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/pkg/validation"
)

// pageQuery estrae limit/offset dalla query string.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
}

// onlyActiveQuery filtro ?active=true per i listati anagrafici.
func onlyActiveQuery(c *fiber.Ctx) bool {
	return c.QueryBool("active", false)
}

// CompanyHandler gestisce le richieste HTTP per le aziende.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler costruisce l'handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crea azienda
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCompanyRequest  true  "Dati azienda"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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
// @Summary      Dettaglio azienda
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID azienda"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "azienda non trovata"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna azienda
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID azienda"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
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
// @Summary      Lista aziende
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int   false  "Limite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Param        active  query  bool  false  "Solo attive"
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina azienda
// @Tags         companies
// @Security     BearerAuth
// @Param        id  path  string  true  "ID azienda"
// @Success      200  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
