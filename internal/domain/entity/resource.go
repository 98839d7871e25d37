package entity

import "time"

// Resource rappresenta un collaboratore/dipendente associabile ai movimenti.
type Resource struct {
	ID        string
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
