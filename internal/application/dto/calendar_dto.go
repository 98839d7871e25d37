package dto

import "time"

// CalendarConnectResponse URL di consenso OAuth da aprire nel client.
type CalendarConnectResponse struct {
	Provider string `json:"provider"`
	AuthURL  string `json:"auth_url"`
}

// CalendarIntegrationResponse stato del collegamento di un provider.
type CalendarIntegrationResponse struct {
	Provider    string    `json:"provider"`
	Connected   bool      `json:"connected"`
	CalendarID  string    `json:"calendar_id,omitempty"`
	SyncEnabled bool      `json:"sync_enabled"`
	TokenExpiry time.Time `json:"token_expiry,omitempty"`
}

// CreateCalendarEventRequest input per creare un evento locale (e sul provider).
type CreateCalendarEventRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	StartAt     time.Time `json:"start_at" validate:"required"`
	EndAt       time.Time `json:"end_at" validate:"required"`
	MovementID  *string   `json:"movement_id" validate:"omitempty,uuid4"`
}

// UpdateCalendarEventRequest aggiornamento di un evento (campi opzionali).
type UpdateCalendarEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
}

// CalendarEventResponse output di un evento.
type CalendarEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	MovementID  *string   `json:"movement_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CalendarEventListResponse eventi in una finestra temporale.
type CalendarEventListResponse struct {
	Items []CalendarEventResponse `json:"items"`
}

// CalendarSyncResponse esito di una sincronizzazione bidirezionale.
type CalendarSyncResponse struct {
	Provider string    `json:"provider"`
	Pulled   int       `json:"pulled"`   // eventi remoti importati
	Pushed   int       `json:"pushed"`   // scadenze locali esportate
	Skipped  int       `json:"skipped"`  // già collegati, nessuna azione
	SyncedAt time.Time `json:"synced_at"`
}
