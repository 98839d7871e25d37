package entity

import "time"

// Provider di open banking collegabili a un IBAN.
const (
	BankingProviderNone    = ""
	BankingProviderFabrick = "fabrick"
	BankingProviderTink    = "tink"
)

// IBAN rappresenta un conto bancario aziendale, opzionalmente collegato
// a un provider open banking per la sincronizzazione delle transazioni.
type IBAN struct {
	ID          string
	CompanyID   string
	Value       string // IBAN normalizzato (senza spazi, maiuscolo), univoco per azienda
	BankName    string
	Description string

	// Collegamento API bancaria (vuoto = nessun collegamento)
	BankingProvider string
	BankingAPIKey   string
	AutoSync        bool

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
