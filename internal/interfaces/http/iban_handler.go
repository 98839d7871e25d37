package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/pkg/validation"
)

// IBANHandler gestisce i conti bancari e il collegamento open banking.
type IBANHandler struct {
	uc *usecase.IBANUseCase
}

// NewIBANHandler costruisce l'handler.
func NewIBANHandler(uc *usecase.IBANUseCase) *IBANHandler {
	return &IBANHandler{uc: uc}
}

// Create godoc
// @Summary      Registra conto bancario
// @Tags         ibans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateIBANRequest  true  "Dati del conto"
// @Success      201   {object}  dto.IBANResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ibans [post]
func (h *IBANHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIBANRequest
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
// @Summary      Dettaglio conto bancario
// @Tags         ibans
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID conto"
// @Success      200  {object}  dto.IBANResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ibans/{id} [get]
func (h *IBANHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conto non trovato"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna conto bancario
// @Tags         ibans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID conto"
// @Param        body  body  dto.UpdateIBANRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.IBANResponse
// @Router       /api/ibans/{id} [put]
func (h *IBANHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIBANRequest
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

// ConfigureBanking godoc
// @Summary      Collega il conto a un provider open banking
// @Tags         ibans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "ID conto"
// @Param        body  body  dto.ConfigureBankingRequest  true  "Provider e credenziali"
// @Success      200   {object}  dto.IBANResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ibans/{id}/banking [post]
func (h *IBANHandler) ConfigureBanking(c *fiber.Ctx) error {
	var in dto.ConfigureBankingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.ConfigureBanking(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DisconnectBanking godoc
// @Summary      Scollega il provider open banking dal conto
// @Tags         ibans
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID conto"
// @Success      200  {object}  dto.IBANResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ibans/{id}/banking [delete]
func (h *IBANHandler) DisconnectBanking(c *fiber.Ctx) error {
	out, err := h.uc.DisconnectBanking(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Conti bancari dell'azienda
// @Tags         ibans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.IBANListResponse
// @Router       /api/ibans [get]
func (h *IBANHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c), pageQuery(c), onlyActiveQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina conto bancario
// @Tags         ibans
// @Security     BearerAuth
// @Param        id  path  string  true  "ID conto"
// @Success      200  {object}  dto.OKResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ibans/{id} [delete]
func (h *IBANHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
