package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/bankingsvc"
	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/pkg/validation"
)

// BankingHandler gestisce sincronizzazione open banking ed export SEPA.
type BankingHandler struct {
	uc *bankingsvc.UseCase
}

// NewBankingHandler costruisce l'handler.
func NewBankingHandler(uc *bankingsvc.UseCase) *BankingHandler {
	return &BankingHandler{uc: uc}
}

// TestConnection godoc
// @Summary      Verifica le credenziali del provider collegato al conto
// @Tags         banking
// @Security     BearerAuth
// @Param        id  path  string  true  "ID conto"
// @Success      200  {object}  dto.OKResponse
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/banking/{id}/test [post]
func (h *BankingHandler) TestConnection(c *fiber.Ctx) error {
	if err := h.uc.TestConnection(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true, Message: "connessione verificata"})
}

// Sync godoc
// @Summary      Importa le transazioni del conto dal provider
// @Tags         banking
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true   "ID conto"
// @Param        from  query  string  false  "Data inizio (default: -30 giorni)"
// @Param        to    query  string  false  "Data fine (default: oggi)"
// @Success      200   {object}  dto.BankingSyncResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/banking/{id}/sync [post]
func (h *BankingHandler) Sync(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
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
	out, err := h.uc.SyncTransactions(c.Context(), c.Params("id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportSEPA godoc
// @Summary      Genera il file pain.001 per i bonifici selezionati
// @Tags         banking
// @Accept       json
// @Produce      application/xml
// @Security     BearerAuth
// @Param        body  body  dto.SEPAExportRequest  true  "Conto di addebito e movimenti"
// @Success      200   {file}  binary
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/banking/sepa [post]
func (h *BankingHandler) ExportSEPA(c *fiber.Ctx) error {
	var in dto.SEPAExportRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	data, err := h.uc.ExportSEPA(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="sepa-%s.xml"`, time.Now().Format("20060102")))
	return c.Send(data)
}
