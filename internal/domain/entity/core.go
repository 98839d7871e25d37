package entity

import "time"

// Core è la linea di business che raggruppa i movimenti sotto un'azienda
// (es. "ristorazione", "consulenza").
type Core struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
