package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

// ResourceRepo persistenza dei collaboratori su PostgreSQL.
type ResourceRepo struct {
	q Querier
}

// NewResourceRepository costruisce l'adapter.
func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

const resourceColumns = `id, company_id, first_name, last_name, email, phone, role, is_active, created_at, updated_at`

// Create persiste un nuovo collaboratore.
func (r *ResourceRepo) Create(res *entity.Resource) error {
	query := `INSERT INTO resources (` + resourceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		res.ID, res.CompanyID, res.FirstName, res.LastName, res.Email,
		res.Phone, res.Role, res.IsActive, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

// GetByID recupera un collaboratore per ID.
func (r *ResourceRepo) GetByID(id string) (*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`
	var res entity.Resource
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.CompanyID, &res.FirstName, &res.LastName, &res.Email,
		&res.Phone, &res.Role, &res.IsActive, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return &res, nil
}

// Update aggiorna un collaboratore.
func (r *ResourceRepo) Update(res *entity.Resource) error {
	query := `
		UPDATE resources
		SET first_name = $2, last_name = $3, email = $4, phone = $5, role = $6,
		    is_active = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		res.ID, res.FirstName, res.LastName, res.Email, res.Phone, res.Role,
		res.IsActive, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany restituisce i collaboratori di un'azienda.
func (r *ResourceRepo) ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE company_id = $1`
	if onlyActive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY last_name, first_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var list []*entity.Resource
	for rows.Next() {
		var res entity.Resource
		if err := rows.Scan(&res.ID, &res.CompanyID, &res.FirstName, &res.LastName, &res.Email,
			&res.Phone, &res.Role, &res.IsActive, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Delete elimina un collaboratore.
func (r *ResourceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}
