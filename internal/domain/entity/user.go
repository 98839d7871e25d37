package entity

import "time"

// Ruoli validi per User.
const (
	RoleAdmin    = "admin"
	RoleCashflow = "cashflow"
	RoleUser     = "user"
)

// User rappresenta un utente del sistema (appartiene a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // hash bcrypt, mai in chiaro nel dominio dopo la persistenza
	FirstName    string
	LastName     string
	Role         string // admin, cashflow, user
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
