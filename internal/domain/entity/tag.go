package entity

import "time"

// Tag etichetta libera associabile ai movimenti (nome univoco).
type Tag struct {
	ID        string
	Name      string
	Color     string // esadecimale "#RRGGBB" per il client
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
