package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/backupsvc"
	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/pkg/validation"
)

// BackupHandler gestisce configurazione ed esecuzione dei backup.
type BackupHandler struct {
	uc *backupsvc.UseCase
}

// NewBackupHandler costruisce l'handler.
func NewBackupHandler(uc *backupsvc.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Save godoc
// @Summary      Salva configurazione di backup
// @Tags         backup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveBackupSettingsRequest  true  "Provider e credenziali"
// @Success      200   {object}  dto.BackupSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/backup [put]
func (h *BackupHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveBackupSettingsRequest
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
// @Summary      Configurazione di backup corrente
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BackupSettingsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/backup [get]
func (h *BackupHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Test godoc
// @Summary      Verifica l'accesso al bucket configurato
// @Tags         backup
// @Security     BearerAuth
// @Success      200  {object}  dto.OKResponse
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/settings/backup/test [post]
func (h *BackupHandler) Test(c *fiber.Ctx) error {
	if err := h.uc.Test(c.Context(), GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true, Message: "accesso al bucket verificato"})
}

// Run godoc
// @Summary      Esegue uno snapshot di backup
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BackupRunResponse
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/settings/backup/run [post]
func (h *BackupHandler) Run(c *fiber.Ctx) error {
	out, err := h.uc.Run(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Snapshots godoc
// @Summary      Elenca gli snapshot presenti sul bucket
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/settings/backup/snapshots [get]
func (h *BackupHandler) Snapshots(c *fiber.Ctx) error {
	out, err := h.uc.ListSnapshots(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}
