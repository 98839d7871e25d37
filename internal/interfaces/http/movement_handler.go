package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/movement"
	"github.com/easycashflows/api/pkg/validation"
)

// MovementHandler gestisce i movimenti finanziari e le esportazioni.
type MovementHandler struct {
	uc     *movement.UseCase
	export *movement.ExportUseCase
}

// NewMovementHandler costruisce l'handler.
func NewMovementHandler(uc *movement.UseCase, export *movement.ExportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, export: export}
}

// dateRangeQuery legge from/to dalla query string. Accetta RFC 3339 o
// "2006-01-02"; il default è il mese corrente.
func dateRangeQuery(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	parse := func(raw string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", raw)
	}

	if raw := c.Query("from"); raw != "" {
		t, err := parse(raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from non valido: %q", raw)
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parse(raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to non valido: %q", raw)
		}
		// una data secca copre l'intera giornata
		if len(raw) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = t
	}
	return from, to, nil
}

// Create godoc
// @Summary      Registra movimento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMovementRequest  true  "Dati movimento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Dettaglio movimento
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID movimento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimento non trovato"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiorna movimento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID movimento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.MovementResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lista movimenti con filtri
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        type        query  string  false  "income o expense"
// @Param        status_id   query  string  false  "Filtro per stato"
// @Param        core_id     query  string  false  "Filtro per linea di business"
// @Param        tag_id      query  string  false  "Filtro per etichetta"
// @Param        from        query  string  false  "Data inizio (RFC 3339 o 2006-01-02)"
// @Param        to          query  string  false  "Data fine"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "INVALID_QUERY", "query string non valida")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.List(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Totals godoc
// @Summary      Totali di periodo (entrate, uscite, netto)
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  false  "Data inizio (default: primo del mese)"
// @Param        to    query  string  false  "Data fine (default: oggi)"
// @Success      200   {object}  dto.MovementTotalsResponse
// @Router       /api/movements/totals [get]
func (h *MovementHandler) Totals(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	out, err := h.uc.Totals(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Elimina movimento
// @Tags         movements
// @Security     BearerAuth
// @Param        id  path  string  true  "ID movimento"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// ExportPDF godoc
// @Summary      Esporta i movimenti del periodo in PDF
// @Tags         movements
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        from  query  string  false  "Data inizio"
// @Param        to    query  string  false  "Data fine"
// @Success      200   {file}  binary
// @Router       /api/movements/export/pdf [get]
func (h *MovementHandler) ExportPDF(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	data, err := h.export.PDF(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="movimenti-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(data)
}

// ExportExcel godoc
// @Summary      Esporta i movimenti del periodo in Excel
// @Tags         movements
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        from  query  string  false  "Data inizio"
// @Param        to    query  string  false  "Data fine"
// @Success      200   {file}  binary
// @Router       /api/movements/export/excel [get]
func (h *MovementHandler) ExportExcel(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	data, err := h.export.Excel(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="movimenti-%s.xlsx"`, time.Now().Format("20060102")))
	return c.Send(data)
}
