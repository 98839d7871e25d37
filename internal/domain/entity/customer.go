package entity

import "time"

// Customer rappresenta un cliente (anagrafica).
type Customer struct {
	ID        string
	Name      string
	VATNumber string
	TaxCode   string
	Address   string
	Email     string
	Phone     string
	IBAN      string // conto per eventuali rimborsi
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
