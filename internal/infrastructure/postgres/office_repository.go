package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.OfficeRepository = (*OfficeRepo)(nil)

// OfficeRepo persistenza delle sedi su PostgreSQL.
type OfficeRepo struct {
	q Querier
}

// NewOfficeRepository costruisce l'adapter.
func NewOfficeRepository(q Querier) *OfficeRepo {
	return &OfficeRepo{q: q}
}

const officeColumns = `id, company_id, name, address, city, is_active, created_at, updated_at`

// Create persiste una nuova sede.
func (r *OfficeRepo) Create(o *entity.Office) error {
	query := `INSERT INTO offices (` + officeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CompanyID, o.Name, o.Address, o.City, o.IsActive, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert office: %w", err)
	}
	return nil
}

// GetByID recupera una sede per ID.
func (r *OfficeRepo) GetByID(id string) (*entity.Office, error) {
	query := `SELECT ` + officeColumns + ` FROM offices WHERE id = $1`
	var o entity.Office
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.Address, &o.City, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	return &o, nil
}

// Update aggiorna una sede.
func (r *OfficeRepo) Update(o *entity.Office) error {
	query := `
		UPDATE offices SET name = $2, address = $3, city = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, o.Name, o.Address, o.City, o.IsActive, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update office: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany restituisce le sedi di un'azienda.
func (r *OfficeRepo) ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Office, error) {
	query := `SELECT ` + officeColumns + ` FROM offices WHERE company_id = $1`
	if onlyActive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Office
	for rows.Next() {
		var o entity.Office
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Name, &o.Address, &o.City, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una sede.
func (r *OfficeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete office: %w", err)
	}
	return nil
}
