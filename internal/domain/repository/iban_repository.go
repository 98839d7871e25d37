package repository

import "github.com/easycashflows/api/internal/domain/entity"

// IBANRepository porta di persistenza per i conti bancari.
type IBANRepository interface {
	Create(iban *entity.IBAN) error
	GetByID(id string) (*entity.IBAN, error)
	// GetByValue cerca l'IBAN normalizzato all'interno di un'azienda (vincolo di unicità).
	GetByValue(companyID, value string) (*entity.IBAN, error)
	Update(iban *entity.IBAN) error
	ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.IBAN, error)
	Delete(id string) error
}
