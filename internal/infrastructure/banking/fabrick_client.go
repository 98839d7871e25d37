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

var _ ports.BankingProvider = (*FabrickClient)(nil)

const fabrickBaseURL = "https://api.fabrick.com/api/fabrick/v1.0"

// FabrickClient adapter verso la piattaforma open banking Fabrick.
// L'API key è per-IBAN: arriva a ogni chiamata dalle impostazioni del conto.
type FabrickClient struct {
	httpClient *http.Client
}

// NewFabrickClient costruisce l'adapter.
func NewFabrickClient() *FabrickClient {
	return &FabrickClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// ── Strutture del protocollo Fabrick ──────────────────────────────────────────

type fabrickTransaction struct {
	TransactionID   string `json:"transactionId"`
	AccountingDate  string `json:"accountingDate"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
}

type fabrickTransactionList struct {
	Payload struct {
		List []fabrickTransaction `json:"list"`
	} `json:"payload"`
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *FabrickClient) do(ctx context.Context, apiKey, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("fabrick: creare la request: %w", err)
	}
	req.Header.Set("Auth-Schema", "S2S")
	req.Header.Set("Api-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fabrick: chiamata HTTP fallita: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("fabrick: leggere la risposta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fabrick: HTTP %d: %s", resp.StatusCode, string(raw))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("fabrick: deserializzare la risposta: %w", err)
		}
	}
	return nil
}

// Test verifica le credenziali con una lettura dei metadati del conto.
func (c *FabrickClient) Test(ctx context.Context, apiKey, iban string) error {
	u := fmt.Sprintf("%s/accounts/%s", fabrickBaseURL, url.PathEscape(iban))
	return c.do(ctx, apiKey, u, nil)
}

// ListTransactions restituisce le transazioni del conto nella finestra [from, to].
func (c *FabrickClient) ListTransactions(ctx context.Context, apiKey, iban string, from, to time.Time) ([]ports.BankTransaction, error) {
	u := fmt.Sprintf("%s/accounts/%s/transactions?fromAccountingDate=%s&toAccountingDate=%s",
		fabrickBaseURL, url.PathEscape(iban),
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	var list fabrickTransactionList
	if err := c.do(ctx, apiKey, u, &list); err != nil {
		return nil, err
	}
	if list.Error != nil {
		return nil, fmt.Errorf("fabrick: errore %s: %s", list.Error.Code, list.Error.Description)
	}

	var txs []ports.BankTransaction
	for _, item := range list.Payload.List {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("fabrick: importo non valido %q: %w", item.Amount, err)
		}
		date, err := time.Parse("2006-01-02", item.AccountingDate)
		if err != nil {
			return nil, fmt.Errorf("fabrick: data non valida %q: %w", item.AccountingDate, err)
		}
		txs = append(txs, ports.BankTransaction{
			ExternalID:  item.TransactionID,
			Date:        date,
			Amount:      amount,
			Description: item.Description,
		})
	}
	return txs, nil
}
