package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// Garantisce che CompanyRepo implementi repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementazione della porta CompanyRepository su PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository costruisce l'adapter di persistenza per le aziende.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, vat_number, tax_code, address, city, zip, country, phone, email, is_active, created_at, updated_at`

// Create persiste una nuova azienda.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.VATNumber, c.TaxCode, c.Address, c.City, c.ZIP,
		c.Country, c.Phone, c.Email, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID recupera un'azienda per ID. Restituisce (nil, nil) se non esiste.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByVATNumber recupera un'azienda per partita IVA.
func (r *CompanyRepo) GetByVATNumber(vat string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE vat_number = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, vat))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by vat: %w", err)
	}
	return c, nil
}

// Update aggiorna un'azienda esistente.
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, tax_code = $3, address = $4, city = $5, zip = $6,
		    country = $7, phone = $8, email = $9, is_active = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.TaxCode, c.Address, c.City, c.ZIP,
		c.Country, c.Phone, c.Email, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List restituisce le aziende con paginazione; onlyActive esclude le disattivate.
func (r *CompanyRepo) List(limit, offset int, onlyActive bool) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un'azienda per ID. Se è ancora referenziata restituisce ErrInUse.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// rowScanner astrae pgx.Row e pgx.Rows per condividere lo scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.VATNumber, &c.TaxCode, &c.Address, &c.City, &c.ZIP,
		&c.Country, &c.Phone, &c.Email, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
