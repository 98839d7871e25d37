package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var (
	_ repository.CalendarIntegrationRepository = (*CalendarIntegrationRepo)(nil)
	_ repository.CalendarEventRepository       = (*CalendarEventRepo)(nil)
	_ repository.CalendarLinkRepository        = (*CalendarLinkRepo)(nil)
)

// CalendarIntegrationRepo persistenza dei token OAuth per provider calendario.
type CalendarIntegrationRepo struct {
	q Querier
}

// NewCalendarIntegrationRepository costruisce l'adapter.
func NewCalendarIntegrationRepository(q Querier) *CalendarIntegrationRepo {
	return &CalendarIntegrationRepo{q: q}
}

const integrationColumns = `id, user_id, provider, access_token, refresh_token, token_expiry,
	calendar_id, sync_enabled, created_at, updated_at`

// GetByUserAndProvider recupera l'integrazione di un utente per un provider.
func (r *CalendarIntegrationRepo) GetByUserAndProvider(userID, provider string) (*entity.CalendarIntegration, error) {
	query := `SELECT ` + integrationColumns + ` FROM calendar_integrations WHERE user_id = $1 AND provider = $2`
	var i entity.CalendarIntegration
	err := r.q.QueryRow(context.Background(), query, userID, provider).Scan(
		&i.ID, &i.UserID, &i.Provider, &i.AccessToken, &i.RefreshToken, &i.TokenExpiry,
		&i.CalendarID, &i.SyncEnabled, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar integration: %w", err)
	}
	return &i, nil
}

// ListByUser restituisce tutte le integrazioni di un utente.
func (r *CalendarIntegrationRepo) ListByUser(userID string) ([]*entity.CalendarIntegration, error) {
	query := `SELECT ` + integrationColumns + ` FROM calendar_integrations WHERE user_id = $1 ORDER BY provider`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar integrations: %w", err)
	}
	defer rows.Close()

	var list []*entity.CalendarIntegration
	for rows.Next() {
		var i entity.CalendarIntegration
		if err := rows.Scan(&i.ID, &i.UserID, &i.Provider, &i.AccessToken, &i.RefreshToken, &i.TokenExpiry,
			&i.CalendarID, &i.SyncEnabled, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar integration: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Save esegue l'upsert sulla coppia (user_id, provider). Riconnettersi
// sovrascrive i token precedenti.
func (r *CalendarIntegrationRepo) Save(i *entity.CalendarIntegration) error {
	query := `
		INSERT INTO calendar_integrations (` + integrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, provider) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expiry = EXCLUDED.token_expiry,
			calendar_id = EXCLUDED.calendar_id,
			sync_enabled = EXCLUDED.sync_enabled,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.UserID, i.Provider, i.AccessToken, i.RefreshToken, i.TokenExpiry,
		i.CalendarID, i.SyncEnabled, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save calendar integration: %w", err)
	}
	return nil
}

// Delete rimuove l'integrazione (disconnessione del provider).
func (r *CalendarIntegrationRepo) Delete(userID, provider string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM calendar_integrations WHERE user_id = $1 AND provider = $2`, userID, provider)
	if err != nil {
		return fmt.Errorf("delete calendar integration: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CalendarEventRepo persistenza degli eventi locali.
type CalendarEventRepo struct {
	q Querier
}

// NewCalendarEventRepository costruisce l'adapter.
func NewCalendarEventRepository(q Querier) *CalendarEventRepo {
	return &CalendarEventRepo{q: q}
}

const eventColumns = `id, user_id, title, description, start_at, end_at, movement_id, created_at, updated_at`

// Create persiste un nuovo evento locale.
func (r *CalendarEventRepo) Create(e *entity.CalendarEvent) error {
	query := `INSERT INTO calendar_events (` + eventColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.UserID, e.Title, e.Description, e.StartAt, e.EndAt, e.MovementID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert calendar event: %w", err)
	}
	return nil
}

// GetByID recupera un evento per ID.
func (r *CalendarEventRepo) GetByID(id string) (*entity.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = $1`
	var e entity.CalendarEvent
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &e.MovementID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar event: %w", err)
	}
	return &e, nil
}

// GetByMovement recupera l'evento generato da una scadenza di movimento.
func (r *CalendarEventRepo) GetByMovement(movementID string) (*entity.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE movement_id = $1`
	var e entity.CalendarEvent
	err := r.q.QueryRow(context.Background(), query, movementID).Scan(
		&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &e.MovementID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar event by movement: %w", err)
	}
	return &e, nil
}

// Update aggiorna un evento locale.
func (r *CalendarEventRepo) Update(e *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $2, description = $3, start_at = $4, end_at = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, e.ID, e.Title, e.Description, e.StartAt, e.EndAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update calendar event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBetween restituisce gli eventi di un utente nell'intervallo [from, to].
func (r *CalendarEventRepo) ListBetween(userID string, from, to time.Time) ([]*entity.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
		WHERE user_id = $1 AND start_at >= $2 AND start_at <= $3
		ORDER BY start_at`
	rows, err := r.q.Query(context.Background(), query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	var list []*entity.CalendarEvent
	for rows.Next() {
		var e entity.CalendarEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartAt, &e.EndAt,
			&e.MovementID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un evento locale.
func (r *CalendarEventRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CalendarLinkRepo persistenza dei collegamenti evento locale <-> remoto.
type CalendarLinkRepo struct {
	q Querier
}

// NewCalendarLinkRepository costruisce l'adapter.
func NewCalendarLinkRepository(q Querier) *CalendarLinkRepo {
	return &CalendarLinkRepo{q: q}
}

const linkColumns = `id, local_event_id, provider, remote_event_id, synced_at`

// Create persiste un nuovo collegamento.
func (r *CalendarLinkRepo) Create(l *entity.CalendarEventLink) error {
	query := `INSERT INTO calendar_event_links (` + linkColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.LocalEventID, l.Provider, l.RemoteEventID, l.SyncedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert calendar link: %w", err)
	}
	return nil
}

// GetByRemote cerca il collegamento partendo dall'ID remoto.
func (r *CalendarLinkRepo) GetByRemote(provider, remoteEventID string) (*entity.CalendarEventLink, error) {
	query := `SELECT ` + linkColumns + ` FROM calendar_event_links WHERE provider = $1 AND remote_event_id = $2`
	var l entity.CalendarEventLink
	err := r.q.QueryRow(context.Background(), query, provider, remoteEventID).Scan(
		&l.ID, &l.LocalEventID, &l.Provider, &l.RemoteEventID, &l.SyncedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar link by remote: %w", err)
	}
	return &l, nil
}

// GetByLocal cerca il collegamento partendo dall'evento locale.
func (r *CalendarLinkRepo) GetByLocal(provider, localEventID string) (*entity.CalendarEventLink, error) {
	query := `SELECT ` + linkColumns + ` FROM calendar_event_links WHERE provider = $1 AND local_event_id = $2`
	var l entity.CalendarEventLink
	err := r.q.QueryRow(context.Background(), query, provider, localEventID).Scan(
		&l.ID, &l.LocalEventID, &l.Provider, &l.RemoteEventID, &l.SyncedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get calendar link by local: %w", err)
	}
	return &l, nil
}

// DeleteByLocal rimuove tutti i collegamenti di un evento locale.
func (r *CalendarLinkRepo) DeleteByLocal(localEventID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM calendar_event_links WHERE local_event_id = $1`, localEventID)
	if err != nil {
		return fmt.Errorf("delete calendar links: %w", err)
	}
	return nil
}
