package repository

import "github.com/easycashflows/api/internal/domain/entity"

// OfficeRepository porta di persistenza per le sedi.
type OfficeRepository interface {
	Create(office *entity.Office) error
	GetByID(id string) (*entity.Office, error)
	Update(office *entity.Office) error
	ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Office, error)
	Delete(id string) error
}
