package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.CoreRepository = (*CoreRepo)(nil)

// CoreRepo persistenza delle linee di business su PostgreSQL.
type CoreRepo struct {
	q Querier
}

// NewCoreRepository costruisce l'adapter. Passare pool o tx (Querier).
func NewCoreRepository(q Querier) *CoreRepo {
	return &CoreRepo{q: q}
}

const coreColumns = `id, company_id, name, description, is_active, created_at, updated_at`

// Create persiste una nuova linea di business.
func (r *CoreRepo) Create(c *entity.Core) error {
	query := `INSERT INTO cores (` + coreColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CompanyID, c.Name, c.Description, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert core: %w", err)
	}
	return nil
}

// GetByID recupera una linea di business per ID.
func (r *CoreRepo) GetByID(id string) (*entity.Core, error) {
	query := `SELECT ` + coreColumns + ` FROM cores WHERE id = $1`
	var c entity.Core
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get core: %w", err)
	}
	return &c, nil
}

// Update aggiorna una linea di business.
func (r *CoreRepo) Update(c *entity.Core) error {
	query := `
		UPDATE cores SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update core: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany restituisce le linee di business di un'azienda.
func (r *CoreRepo) ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Core, error) {
	query := `SELECT ` + coreColumns + ` FROM cores WHERE company_id = $1`
	if onlyActive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Core
	for rows.Next() {
		var c entity.Core
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan core: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una linea di business. Se referenziata da movimenti restituisce ErrInUse.
func (r *CoreRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete core: %w", err)
	}
	return nil
}
