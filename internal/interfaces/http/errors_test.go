package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
)

func errorResponseFor(t *testing.T, handler fiber.Handler) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRespondAIError_ServizioNonDisponibile(t *testing.T) {
	status, body := errorResponseFor(t, func(c *fiber.Ctx) error {
		return respondAIError(c, fmt.Errorf("AI: ANTHROPIC_API_KEY non configurata: %w", domain.ErrUnavailable))
	})

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "AI_UNAVAILABLE", body.Code)
}

func TestRespondAIError_TimeoutDelModello(t *testing.T) {
	status, body := errorResponseFor(t, func(c *fiber.Ctx) error {
		return respondAIError(c, fmt.Errorf("AI: timeout o cancellazione: %w", context.DeadlineExceeded))
	})

	assert.Equal(t, fiber.StatusRequestTimeout, status)
	assert.Equal(t, "TIMEOUT", body.Code)
}

func TestRespondError_TimeoutServizioEsterno(t *testing.T) {
	status, body := errorResponseFor(t, func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("calendar: push evento: %w", context.DeadlineExceeded))
	})

	assert.Equal(t, fiber.StatusRequestTimeout, status)
	assert.Equal(t, "TIMEOUT", body.Code)
}

func TestRespondError_ErroreSconosciuto(t *testing.T) {
	status, body := errorResponseFor(t, func(c *fiber.Ctx) error {
		return respondError(c, fmt.Errorf("qualcosa di inatteso"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
}
