package entity

import "time"

// Provider calendario supportati.
const (
	CalendarProviderGoogle  = "google"
	CalendarProviderOutlook = "outlook"
)

// CalendarIntegration conserva i token OAuth di un utente per un provider.
// Vincolo di unicità su (UserID, Provider).
type CalendarIntegration struct {
	ID           string
	UserID       string
	Provider     string // google | outlook
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	CalendarID   string // calendario remoto di destinazione; "primary" se vuoto
	SyncEnabled  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CalendarEvent è un evento locale (scadenza finanziaria o evento importato).
type CalendarEvent struct {
	ID          string
	UserID      string
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
	MovementID  *string // valorizzato se l'evento nasce da una scadenza di movimento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CalendarEventLink collega un evento locale al suo omologo remoto.
// La sync salta gli elementi già collegati (nessuna risoluzione conflitti:
// vince il timestamp più recente).
type CalendarEventLink struct {
	ID            string
	LocalEventID  string
	Provider      string
	RemoteEventID string
	SyncedAt      time.Time
}

// RemoteEvent è la vista normalizzata di un evento restituito dal provider.
type RemoteEvent struct {
	RemoteID    string
	Title       string
	Description string
	StartAt     time.Time
	EndAt       time.Time
	UpdatedAt   time.Time
}
