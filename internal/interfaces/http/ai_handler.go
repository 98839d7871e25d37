package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/pkg/validation"
)

// AIHandler espone l'assistente fiscale e l'analisi AI dei movimenti.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler costruisce l'handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// respondAIError mappa l'indisponibilità dell'assistente (API key assente,
// provider fuori servizio) su 503; il resto segue la mappatura comune,
// compreso il timeout del modello su 408.
func respondAIError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "assistente AI non disponibile"})
	}
	return respondError(c, err)
}

// FiscalChat godoc
// @Summary      Domanda all'assistente fiscale
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.FiscalChatRequest  true  "Domanda"
// @Success      200   {object}  dto.FiscalChatResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/fiscal-chat [post]
func (h *AIHandler) FiscalChat(c *fiber.Ctx) error {
	var in dto.FiscalChatRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.FiscalChat(c.Context(), in)
	if err != nil {
		return respondAIError(c, err)
	}
	return c.JSON(out)
}

// MovementInsights godoc
// @Summary      Sintesi AI dei movimenti di un periodo
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MovementInsightsRequest  true  "Finestra temporale"
// @Success      200   {object}  dto.MovementInsightsResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/insights [post]
func (h *AIHandler) MovementInsights(c *fiber.Ctx) error {
	var in dto.MovementInsightsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "body non valido")
	}
	if err := validation.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.MovementInsights(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondAIError(c, err)
	}
	return c.JSON(out)
}
