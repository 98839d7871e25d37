package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipi di movimento finanziario.
const (
	MovementTypeIncome  = "income"  // entrata
	MovementTypeExpense = "expense" // uscita
)

// Movement è il singolo movimento finanziario (entrata o uscita), tabella
// centrale dei fatti. Riferimenti obbligatori: company, core, reason, status.
// I riferimenti opzionali restano nil quando non impostati.
type Movement struct {
	ID          string
	CompanyID   string
	CoreID      string
	Type        string          // income | expense
	Amount      decimal.Decimal // sempre positivo; il segno lo dà Type
	VATAmount   decimal.Decimal
	Date        time.Time
	Description string
	ReasonID    string
	StatusID    string

	// Riferimenti opzionali
	ResourceID *string
	OfficeID   *string
	IBANID     *string
	TagID      *string
	SupplierID *string
	CustomerID *string

	DocumentNumber string
	Notes          string
	ExternalID     string // ID transazione del provider bancario, se importato

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
}

// SignedAmount restituisce l'importo con segno: positivo per le entrate,
// negativo per le uscite.
func (m *Movement) SignedAmount() decimal.Decimal {
	if m.Type == MovementTypeExpense {
		return m.Amount.Neg()
	}
	return m.Amount
}
