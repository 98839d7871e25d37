package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
)

// Verifica a compile time che AnthropicService implementi LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adapter che implementa LLMService usando la API REST di
// Anthropic (Claude). Usa net/http della libreria standard; non serve l'SDK.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService costruisce l'adapter.
// model di solito è "claude-3-5-haiku-20241022".
// Se apiKey è vuota le chiamate restituiscono un errore descrittivo, niente panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout di rete di 25 s; lo use case impone in più un context.WithTimeout di 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Strutture interne del protocollo Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete invia system prompt e domanda al modello e restituisce la risposta
// testuale così com'è, senza post-processing.
func (s *AnthropicService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	if s.apiKey == "" {
		return "", "", fmt.Errorf("AI: ANTHROPIC_API_KEY non configurata: %w", domain.ErrUnavailable)
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("AI: serializzare la request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("AI: creare la HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", "", fmt.Errorf("AI: timeout o cancellazione: %w", ctx.Err())
		}
		return "", "", fmt.Errorf("AI: chiamata HTTP fallita: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", "", fmt.Errorf("AI: leggere la risposta: %w", err)
	}

	// Gestione degli errori HTTP della API di Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", "", fmt.Errorf("AI: deserializzare la risposta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return "", "", fmt.Errorf("AI: il modello ha restituito una risposta vuota")
	}

	return anthResp.Content[0].Text, s.model, nil
}
