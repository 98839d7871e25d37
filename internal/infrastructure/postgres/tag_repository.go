package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo persistenza delle etichette su PostgreSQL.
type TagRepo struct {
	q Querier
}

// NewTagRepository costruisce l'adapter.
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

const tagColumns = `id, name, color, is_active, created_at, updated_at`

// Create persiste una nuova etichetta. Nome duplicato -> ErrDuplicate.
func (r *TagRepo) Create(t *entity.Tag) error {
	query := `INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Color, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID recupera un'etichetta per ID.
func (r *TagRepo) GetByID(id string) (*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`
	var t entity.Tag
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Color, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

// GetByName recupera un'etichetta per nome (vincolo univoco).
func (r *TagRepo) GetByName(name string) (*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE name = $1`
	var t entity.Tag
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&t.ID, &t.Name, &t.Color, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag by name: %w", err)
	}
	return &t, nil
}

// Update aggiorna un'etichetta.
func (r *TagRepo) Update(t *entity.Tag) error {
	query := `UPDATE tags SET name = $2, color = $3, is_active = $4, updated_at = $5 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.Color, t.IsActive, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce le etichette con paginazione.
func (r *TagRepo) List(limit, offset int, onlyActive bool) ([]*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un'etichetta.
func (r *TagRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
