package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/easycashflows/api/internal/application/ports"
)

var _ ports.WhatsAppSender = (*TwilioWhatsApp)(nil)

// TwilioWhatsApp invia messaggi WhatsApp Business tramite la Messages API di
// Twilio. REST diretto con Basic Auth; niente SDK.
type TwilioWhatsApp struct {
	accountSID string
	authToken  string
	fromNumber string // numero mittente in E.164, senza prefisso whatsapp:
	httpClient *http.Client
}

// NewTwilioWhatsApp costruisce l'adapter.
func NewTwilioWhatsApp(accountSID, authToken, fromNumber string) *TwilioWhatsApp {
	return &TwilioWhatsApp{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send invia il messaggio al numero `to` (già in E.164).
func (t *TwilioWhatsApp) Send(ctx context.Context, to, message string) error {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", t.accountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+t.fromNumber)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: creare la request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: chiamata HTTP fallita: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		var terr twilioError
		if jsonErr := json.Unmarshal(raw, &terr); jsonErr == nil && terr.Message != "" {
			return fmt.Errorf("twilio: errore %d: %s", terr.Code, terr.Message)
		}
		return fmt.Errorf("twilio: HTTP %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
