package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo persistenza dei clienti su PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository costruisce l'adapter.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, vat_number, tax_code, address, email, phone, iban, is_active, created_at, updated_at`

// Create persiste un nuovo cliente.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.VATNumber, c.TaxCode, c.Address, c.Email, c.Phone, c.IBAN,
		c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID recupera un cliente per ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.VATNumber, &c.TaxCode, &c.Address, &c.Email, &c.Phone, &c.IBAN,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByVATNumber recupera un cliente per partita IVA.
func (r *CustomerRepo) GetByVATNumber(vat string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE vat_number = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, vat).Scan(
		&c.ID, &c.Name, &c.VATNumber, &c.TaxCode, &c.Address, &c.Email, &c.Phone, &c.IBAN,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by vat: %w", err)
	}
	return &c, nil
}

// Update aggiorna un cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, tax_code = $3, address = $4, email = $5, phone = $6,
		    iban = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.TaxCode, c.Address, c.Email, c.Phone, c.IBAN, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce i clienti con paginazione.
func (r *CustomerRepo) List(limit, offset int, onlyActive bool) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.VATNumber, &c.TaxCode, &c.Address, &c.Email, &c.Phone, &c.IBAN,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
