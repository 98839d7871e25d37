package entity

import "time"

// MovementReason causale del movimento (es. "Fattura", "Stipendio", "F24").
type MovementReason struct {
	ID        string
	Name      string // univoco
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
