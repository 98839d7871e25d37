package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/analytics"
)

// DashboardHandler espone i KPI aggregati del cruscotto.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler costruisce l'handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      KPI del giorno, del mese e serie annuale
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
