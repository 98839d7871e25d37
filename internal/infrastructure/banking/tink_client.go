package banking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/application/ports"
)

var _ ports.BankingProvider = (*TinkClient)(nil)

const tinkBaseURL = "https://api.tink.com/data/v2"

// TinkClient adapter verso la piattaforma open banking Tink.
// L'apiKey è l'access token utente rilasciato da Tink per il conto collegato.
type TinkClient struct {
	httpClient *http.Client
}

// NewTinkClient costruisce l'adapter.
func NewTinkClient() *TinkClient {
	return &TinkClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// ── Strutture del protocollo Tink ─────────────────────────────────────────────

type tinkAmount struct {
	Value struct {
		UnscaledValue string `json:"unscaledValue"`
		Scale         string `json:"scale"`
	} `json:"value"`
	CurrencyCode string `json:"currencyCode"`
}

type tinkTransaction struct {
	ID     string `json:"id"`
	Amount tinkAmount `json:"amount"`
	Dates  struct {
		Booked string `json:"booked"`
	} `json:"dates"`
	Descriptions struct {
		Display string `json:"display"`
	} `json:"descriptions"`
}

type tinkTransactionList struct {
	Transactions []tinkTransaction `json:"transactions"`
}

func (c *TinkClient) do(ctx context.Context, accessToken, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("tink: creare la request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tink: chiamata HTTP fallita: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("tink: leggere la risposta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tink: HTTP %d: %s", resp.StatusCode, string(raw))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("tink: deserializzare la risposta: %w", err)
		}
	}
	return nil
}

// Test verifica il token con una lettura della lista conti.
func (c *TinkClient) Test(ctx context.Context, apiKey, iban string) error {
	_ = iban // Tink identifica il conto dal token, non dall'IBAN
	return c.do(ctx, apiKey, tinkBaseURL+"/accounts", nil)
}

// ListTransactions restituisce le transazioni del conto nella finestra [from, to].
func (c *TinkClient) ListTransactions(ctx context.Context, apiKey, iban string, from, to time.Time) ([]ports.BankTransaction, error) {
	_ = iban
	u := fmt.Sprintf("%s/transactions?bookedDateGte=%s&bookedDateLte=%s",
		tinkBaseURL,
		url.QueryEscape(from.Format("2006-01-02")),
		url.QueryEscape(to.Format("2006-01-02")))

	var list tinkTransactionList
	if err := c.do(ctx, apiKey, u, &list); err != nil {
		return nil, err
	}

	var txs []ports.BankTransaction
	for _, item := range list.Transactions {
		amount, err := parseTinkAmount(item.Amount)
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", item.Dates.Booked)
		if err != nil {
			return nil, fmt.Errorf("tink: data non valida %q: %w", item.Dates.Booked, err)
		}
		txs = append(txs, ports.BankTransaction{
			ExternalID:  item.ID,
			Date:        date,
			Amount:      amount,
			Description: item.Descriptions.Display,
		})
	}
	return txs, nil
}

// parseTinkAmount converte la coppia (unscaledValue, scale) in decimal.
// Esempio: unscaledValue "-12345", scale "2" -> -123.45.
func parseTinkAmount(a tinkAmount) (decimal.Decimal, error) {
	unscaled, err := decimal.NewFromString(a.Value.UnscaledValue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tink: importo non valido %q: %w", a.Value.UnscaledValue, err)
	}
	scale, err := decimal.NewFromString(a.Value.Scale)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tink: scale non valida %q: %w", a.Value.Scale, err)
	}
	return unscaled.Shift(int32(-scale.IntPart())), nil
}
