package entity

import "time"

// MovementStatus è un valore di riferimento libero impostato dal client
// (es. "Saldato", "Da saldare"). Nessuna macchina a stati: il backend non
// impone transizioni.
type MovementStatus struct {
	ID        string
	Name      string // univoco
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
