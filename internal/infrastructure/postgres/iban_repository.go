package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.IBANRepository = (*IBANRepo)(nil)

// IBANRepo persistenza dei conti bancari su PostgreSQL.
type IBANRepo struct {
	q Querier
}

// NewIBANRepository costruisce l'adapter.
func NewIBANRepository(q Querier) *IBANRepo {
	return &IBANRepo{q: q}
}

const ibanColumns = `id, company_id, value, bank_name, description, banking_provider, banking_api_key, auto_sync, is_active, created_at, updated_at`

// Create persiste un nuovo conto bancario.
func (r *IBANRepo) Create(i *entity.IBAN) error {
	query := `INSERT INTO ibans (` + ibanColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.CompanyID, i.Value, i.BankName, i.Description,
		i.BankingProvider, i.BankingAPIKey, i.AutoSync, i.IsActive, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert iban: %w", err)
	}
	return nil
}

// GetByID recupera un conto per ID.
func (r *IBANRepo) GetByID(id string) (*entity.IBAN, error) {
	query := `SELECT ` + ibanColumns + ` FROM ibans WHERE id = $1`
	i, err := scanIBAN(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get iban: %w", err)
	}
	return i, nil
}

// GetByValue cerca l'IBAN normalizzato all'interno di un'azienda.
func (r *IBANRepo) GetByValue(companyID, value string) (*entity.IBAN, error) {
	query := `SELECT ` + ibanColumns + ` FROM ibans WHERE company_id = $1 AND value = $2`
	i, err := scanIBAN(r.q.QueryRow(context.Background(), query, companyID, value))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get iban by value: %w", err)
	}
	return i, nil
}

// Update aggiorna un conto bancario (inclusi i campi del collegamento banking).
func (r *IBANRepo) Update(i *entity.IBAN) error {
	query := `
		UPDATE ibans
		SET bank_name = $2, description = $3, banking_provider = $4, banking_api_key = $5,
		    auto_sync = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		i.ID, i.BankName, i.Description, i.BankingProvider, i.BankingAPIKey,
		i.AutoSync, i.IsActive, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update iban: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany restituisce i conti di un'azienda.
func (r *IBANRepo) ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.IBAN, error) {
	query := `SELECT ` + ibanColumns + ` FROM ibans WHERE company_id = $1`
	if onlyActive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ibans: %w", err)
	}
	defer rows.Close()

	var list []*entity.IBAN
	for rows.Next() {
		i, err := scanIBAN(rows)
		if err != nil {
			return nil, fmt.Errorf("scan iban: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Delete elimina un conto bancario.
func (r *IBANRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ibans WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete iban: %w", err)
	}
	return nil
}

func scanIBAN(row rowScanner) (*entity.IBAN, error) {
	var i entity.IBAN
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.Value, &i.BankName, &i.Description,
		&i.BankingProvider, &i.BankingAPIKey, &i.AutoSync, &i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
