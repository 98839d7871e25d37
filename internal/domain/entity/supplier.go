package entity

import "time"

// Supplier rappresenta un fornitore (anagrafica).
type Supplier struct {
	ID        string
	Name      string
	VATNumber string
	TaxCode   string
	Address   string
	Email     string
	Phone     string
	IBAN      string // conto del beneficiario per i bonifici SEPA
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
