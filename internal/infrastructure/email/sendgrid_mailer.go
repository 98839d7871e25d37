package email

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

var _ ports.Mailer = (*SendGridMailer)(nil)

const sendGridSendURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridMailer invia email tramite la Mail Send API v3 di SendGrid.
// REST diretto con net/http, stesso approccio dell'adapter AI.
type SendGridMailer struct {
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

// NewSendGridMailer costruisce l'adapter.
func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ── Strutture del protocollo SendGrid v3 ──────────────────────────────────────

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgRequest struct {
	Personalizations []struct {
		To []sgAddress `json:"to"`
	} `json:"personalizations"`
	From    sgAddress `json:"from"`
	Subject string    `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

// Send invia l'email. Il body è testo semplice.
func (s *SendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	var payload sgRequest
	payload.Personalizations = []struct {
		To []sgAddress `json:"to"`
	}{{To: []sgAddress{{Email: to}}}}
	payload.From = sgAddress{Email: s.fromEmail, Name: s.fromName}
	payload.Subject = subject
	payload.Content = []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{{Type: "text/plain", Value: body}}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sendgrid: serializzare la request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridSendURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("sendgrid: creare la request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid: chiamata HTTP fallita: %w", err)
	}
	defer resp.Body.Close()

	// SendGrid risponde 202 Accepted quando il messaggio è in coda.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return fmt.Errorf("sendgrid: HTTP %d: %s", resp.StatusCode, string(errBody))
	}
	return nil
}
