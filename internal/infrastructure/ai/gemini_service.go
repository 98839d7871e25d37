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

// Verifica a compile time che GeminiService implementi LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// GeminiService adapter alternativo che implementa LLMService usando la API
// REST di Google Gemini. Stesso contratto di AnthropicService: la scelta del
// provider avviene in fase di bootstrap via AI_PROVIDER.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService costruisce l'adapter. model di solito è "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// ── Strutture interne del protocollo generateContent ──────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete invia system prompt e domanda al modello e restituisce la risposta
// testuale così com'è.
func (s *GeminiService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	if s.apiKey == "" {
		return "", "", fmt.Errorf("AI: GEMINI_API_KEY non configurata: %w", domain.ErrUnavailable)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("AI: serializzare la request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("AI: creare la HTTP request: %w", err)
	}
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

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", "", fmt.Errorf("AI: deserializzare la risposta Gemini: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if gemResp.Error != nil {
			return "", "", fmt.Errorf("AI: Gemini error %d: %s", gemResp.Error.Code, gemResp.Error.Message)
		}
		return "", "", fmt.Errorf("AI: Gemini HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", "", fmt.Errorf("AI: il modello ha restituito una risposta vuota")
	}

	return gemResp.Candidates[0].Content.Parts[0].Text, s.model, nil
}
