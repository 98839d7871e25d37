package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/domain/entity"
)

// BankTransaction transazione normalizzata restituita dal provider open banking.
type BankTransaction struct {
	ExternalID  string
	Date        time.Time
	Amount      decimal.Decimal // positivo = accredito, negativo = addebito
	Description string
}

// BankingProvider porta di uscita verso le API open banking collegate a un IBAN.
type BankingProvider interface {
	// Test esegue una singola chiamata di verifica credenziali (GET /status).
	Test(ctx context.Context, apiKey, iban string) error
	// ListTransactions restituisce le transazioni del conto nella finestra.
	ListTransactions(ctx context.Context, apiKey, iban string, from, to time.Time) ([]BankTransaction, error)
}

// BankingProviderResolver risolve il nome del provider configurato su un IBAN
// nel suo adapter concreto.
type BankingProviderResolver func(provider string) (BankingProvider, error)

// SEPAPayment è un singolo bonifico dell'export: il movimento di spesa
// più il beneficiario risolto.
type SEPAPayment struct {
	Movement     *entity.Movement
	CreditorName string
	CreditorIBAN string
}

// SEPABuilder genera il documento pain.001.001.03 per un lotto di bonifici
// addebitati su un unico conto aziendale.
type SEPABuilder interface {
	Build(msgID string, company *entity.Company, debtorIBAN *entity.IBAN, payments []SEPAPayment, execution time.Time) ([]byte, error)
}
