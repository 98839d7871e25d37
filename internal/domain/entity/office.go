package entity

import "time"

// Office rappresenta una sede operativa dell'azienda.
type Office struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	City      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
