package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/easycashflows/api/internal/application/ports"
)

var _ ports.WhatsAppSender = (*LinkMobilityWhatsApp)(nil)

// LinkMobilityWhatsApp invia messaggi WhatsApp tramite la gateway API di
// LinkMobility. L'URL dell'endpoint arriva dalle impostazioni perché varia
// per data center del cliente.
type LinkMobilityWhatsApp struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewLinkMobilityWhatsApp costruisce l'adapter.
func NewLinkMobilityWhatsApp(apiKey, baseURL string) *LinkMobilityWhatsApp {
	return &LinkMobilityWhatsApp{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type linkMobilityMessage struct {
	Recipient string `json:"recipient"`
	Channel   string `json:"channel"`
	Content   struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Send invia il messaggio al numero `to` (già in E.164).
func (l *LinkMobilityWhatsApp) Send(ctx context.Context, to, message string) error {
	payload := linkMobilityMessage{
		Recipient: to,
		Channel:   "whatsapp",
	}
	payload.Content.Text = message

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("linkmobility: serializzare il messaggio: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("linkmobility: creare la request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("linkmobility: chiamata HTTP fallita: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return fmt.Errorf("linkmobility: HTTP %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
