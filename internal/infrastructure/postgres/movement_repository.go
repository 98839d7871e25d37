package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistenza dei movimenti finanziari su PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository costruisce l'adapter.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, company_id, core_id, type, amount, vat_amount, date, description,
	reason_id, status_id, resource_id, office_id, iban_id, tag_id, supplier_id, customer_id,
	document_number, notes, external_id, created_at, updated_at, created_by`

// Create persiste un nuovo movimento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `INSERT INTO movements (` + movementColumns + `) VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.CoreID, m.Type, m.Amount, m.VATAmount, m.Date, m.Description,
		m.ReasonID, m.StatusID, m.ResourceID, m.OfficeID, m.IBANID, m.TagID, m.SupplierID, m.CustomerID,
		m.DocumentNumber, m.Notes, nullableString(m.ExternalID), m.CreatedAt, m.UpdatedAt, m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInactiveReference
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID recupera un movimento per ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// GetByExternalID cerca un movimento importato dal provider bancario.
// La coppia (company_id, external_id) è univoca per le righe importate.
func (r *MovementRepo) GetByExternalID(companyID, externalID string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE company_id = $1 AND external_id = $2`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, companyID, externalID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement by external id: %w", err)
	}
	return m, nil
}

// Update aggiorna un movimento esistente.
func (r *MovementRepo) Update(m *entity.Movement) error {
	query := `
		UPDATE movements
		SET core_id = $2, type = $3, amount = $4, vat_amount = $5, date = $6, description = $7,
		    reason_id = $8, status_id = $9, resource_id = $10, office_id = $11, iban_id = $12,
		    tag_id = $13, supplier_id = $14, customer_id = $15, document_number = $16,
		    notes = $17, updated_at = $18
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		m.ID, m.CoreID, m.Type, m.Amount, m.VATAmount, m.Date, m.Description,
		m.ReasonID, m.StatusID, m.ResourceID, m.OfficeID, m.IBANID,
		m.TagID, m.SupplierID, m.CustomerID, m.DocumentNumber,
		m.Notes, m.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInactiveReference
		}
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce i movimenti secondo il filtro, ordinati per data decrescente.
// Le condizioni vengono accumulate e i placeholder numerati in sequenza.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	conds := []string{"company_id = $1"}
	args := []any{filter.CompanyID}

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != nil {
		add("type = $%d", *filter.Type)
	}
	if filter.StatusID != nil {
		add("status_id = $%d", *filter.StatusID)
	}
	if filter.CoreID != nil {
		add("core_id = $%d", *filter.CoreID)
	}
	if filter.TagID != nil {
		add("tag_id = $%d", *filter.TagID)
	}
	if filter.IBANID != nil {
		add("iban_id = $%d", *filter.IBANID)
	}
	if filter.SupplierID != nil {
		add("supplier_id = $%d", *filter.SupplierID)
	}
	if filter.CustomerID != nil {
		add("customer_id = $%d", *filter.CustomerID)
	}
	if filter.From != nil {
		add("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("date <= $%d", *filter.To)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		`SELECT `+movementColumns+` FROM movements WHERE %s ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		strings.Join(conds, " AND "), len(args)-1, len(args),
	)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListUpcoming restituisce i movimenti con data >= from, ordinati per data
// crescente. Alimenta la spinta delle scadenze verso il calendario.
func (r *MovementRepo) ListUpcoming(companyID string, from time.Time, limit int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements
		WHERE company_id = $1 AND date >= $2
		ORDER BY date ASC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, companyID, from, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Delete elimina un movimento.
func (r *MovementRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMovement(row rowScanner) (*entity.Movement, error) {
	var m entity.Movement
	var externalID *string
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.CoreID, &m.Type, &m.Amount, &m.VATAmount, &m.Date, &m.Description,
		&m.ReasonID, &m.StatusID, &m.ResourceID, &m.OfficeID, &m.IBANID, &m.TagID, &m.SupplierID, &m.CustomerID,
		&m.DocumentNumber, &m.Notes, &externalID, &m.CreatedAt, &m.UpdatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if externalID != nil {
		m.ExternalID = *externalID
	}
	return &m, nil
}

// nullableString converte stringa vuota in NULL, per colonne con vincolo
// univoco parziale (external_id).
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
