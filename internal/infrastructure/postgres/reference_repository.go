package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var (
	_ repository.StatusRepository    = (*StatusRepo)(nil)
	_ repository.ReasonRepository    = (*ReasonRepo)(nil)
	_ repository.ReferenceRepository = (*ReferenceRepo)(nil)
)

// StatusRepo persistenza degli stati movimento.
type StatusRepo struct{ q Querier }

// NewStatusRepository costruisce l'adapter.
func NewStatusRepository(q Querier) *StatusRepo { return &StatusRepo{q: q} }

// Create persiste un nuovo stato.
func (r *StatusRepo) Create(s *entity.MovementStatus) error {
	query := `INSERT INTO movement_statuses (id, name, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.IsActive, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert status: %w", err)
	}
	return nil
}

// GetByID recupera uno stato per ID.
func (r *StatusRepo) GetByID(id string) (*entity.MovementStatus, error) {
	return r.get("id", id)
}

// GetByName recupera uno stato per nome.
func (r *StatusRepo) GetByName(name string) (*entity.MovementStatus, error) {
	return r.get("name", name)
}

func (r *StatusRepo) get(field, value string) (*entity.MovementStatus, error) {
	query := fmt.Sprintf(`SELECT id, name, is_active, created_at, updated_at FROM movement_statuses WHERE %s = $1`, field)
	var s entity.MovementStatus
	err := r.q.QueryRow(context.Background(), query, value).Scan(&s.ID, &s.Name, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}

// Update aggiorna uno stato.
func (r *StatusRepo) Update(s *entity.MovementStatus) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movement_statuses SET name = $2, is_active = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Name, s.IsActive, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce gli stati con paginazione.
func (r *StatusRepo) List(limit, offset int, onlyActive bool) ([]*entity.MovementStatus, error) {
	query := `SELECT id, name, is_active, created_at, updated_at FROM movement_statuses`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementStatus
	for rows.Next() {
		var s entity.MovementStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina uno stato.
func (r *StatusRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movement_statuses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete status: %w", err)
	}
	return nil
}

// ReasonRepo persistenza delle causali movimento.
type ReasonRepo struct{ q Querier }

// NewReasonRepository costruisce l'adapter.
func NewReasonRepository(q Querier) *ReasonRepo { return &ReasonRepo{q: q} }

// Create persiste una nuova causale.
func (r *ReasonRepo) Create(m *entity.MovementReason) error {
	query := `INSERT INTO movement_reasons (id, name, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Name, m.IsActive, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reason: %w", err)
	}
	return nil
}

// GetByID recupera una causale per ID.
func (r *ReasonRepo) GetByID(id string) (*entity.MovementReason, error) {
	return r.get("id", id)
}

// GetByName recupera una causale per nome.
func (r *ReasonRepo) GetByName(name string) (*entity.MovementReason, error) {
	return r.get("name", name)
}

func (r *ReasonRepo) get(field, value string) (*entity.MovementReason, error) {
	query := fmt.Sprintf(`SELECT id, name, is_active, created_at, updated_at FROM movement_reasons WHERE %s = $1`, field)
	var m entity.MovementReason
	err := r.q.QueryRow(context.Background(), query, value).Scan(&m.ID, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reason: %w", err)
	}
	return &m, nil
}

// Update aggiorna una causale.
func (r *ReasonRepo) Update(m *entity.MovementReason) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movement_reasons SET name = $2, is_active = $3, updated_at = $4 WHERE id = $1`,
		m.ID, m.Name, m.IsActive, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update reason: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce le causali con paginazione.
func (r *ReasonRepo) List(limit, offset int, onlyActive bool) ([]*entity.MovementReason, error) {
	query := `SELECT id, name, is_active, created_at, updated_at FROM movement_reasons`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reasons: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementReason
	for rows.Next() {
		var m entity.MovementReason
		if err := rows.Scan(&m.ID, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reason: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una causale.
func (r *ReasonRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movement_reasons WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete reason: %w", err)
	}
	return nil
}

// refTables mappa i RefKind sulle tabelle fisiche. Whitelist esplicita:
// il nome tabella non arriva mai dall'input utente.
var refTables = map[repository.RefKind]string{
	repository.RefCompany:  "companies",
	repository.RefCore:     "cores",
	repository.RefReason:   "movement_reasons",
	repository.RefStatus:   "movement_statuses",
	repository.RefResource: "resources",
	repository.RefOffice:   "offices",
	repository.RefIBAN:     "ibans",
	repository.RefTag:      "tags",
	repository.RefSupplier: "suppliers",
	repository.RefCustomer: "customers",
}

// ReferenceRepo verifica esistenza + stato attivo dei riferimenti di un movimento.
type ReferenceRepo struct{ q Querier }

// NewReferenceRepository costruisce l'adapter.
func NewReferenceRepository(q Querier) *ReferenceRepo { return &ReferenceRepo{q: q} }

// ExistsActive verifica che il record esista e sia attivo.
func (r *ReferenceRepo) ExistsActive(kind repository.RefKind, id string) (bool, error) {
	table, ok := refTables[kind]
	if !ok {
		return false, fmt.Errorf("reference kind sconosciuto: %s", kind)
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND is_active = true)`, table)
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return exists, nil
}
