package entity

import "time"

// Company rappresenta un'azienda/tenant del sistema.
type Company struct {
	ID        string
	Name      string
	VATNumber string // Partita IVA (univoca)
	TaxCode   string // Codice fiscale
	Address   string
	City      string
	ZIP       string
	Country   string // codice ISO a 2 lettere, default "IT"
	Phone     string
	Email     string
	IsActive  bool // false = non utilizzabile in nuovi inserimenti, conservata per lo storico
	CreatedAt time.Time
	UpdatedAt time.Time
}
