package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo persistenza dei fornitori su PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository costruisce l'adapter.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, vat_number, tax_code, address, email, phone, iban, is_active, created_at, updated_at`

// Create persiste un nuovo fornitore.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.VATNumber, s.TaxCode, s.Address, s.Email, s.Phone, s.IBAN,
		s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID recupera un fornitore per ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.VATNumber, &s.TaxCode, &s.Address, &s.Email, &s.Phone, &s.IBAN,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// GetByVATNumber recupera un fornitore per partita IVA.
func (r *SupplierRepo) GetByVATNumber(vat string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE vat_number = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, vat).Scan(
		&s.ID, &s.Name, &s.VATNumber, &s.TaxCode, &s.Address, &s.Email, &s.Phone, &s.IBAN,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by vat: %w", err)
	}
	return &s, nil
}

// Update aggiorna un fornitore.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, tax_code = $3, address = $4, email = $5, phone = $6,
		    iban = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.TaxCode, s.Address, s.Email, s.Phone, s.IBAN, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce i fornitori con paginazione.
func (r *SupplierRepo) List(limit, offset int, onlyActive bool) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.VATNumber, &s.TaxCode, &s.Address, &s.Email, &s.Phone, &s.IBAN,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un fornitore.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
