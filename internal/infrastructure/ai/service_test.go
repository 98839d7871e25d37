package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/domain"
)

func TestAnthropicComplete_SenzaAPIKey(t *testing.T) {
	s := NewAnthropicService("", "claude-3-5-haiku-20241022")

	_, _, err := s.Complete(context.Background(), "sistema", "domanda")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable,
		"la API key assente deve segnalare il servizio come non disponibile")
}

func TestGeminiComplete_SenzaAPIKey(t *testing.T) {
	s := NewGeminiService("", "gemini-1.5-flash")

	_, _, err := s.Complete(context.Background(), "sistema", "domanda")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
