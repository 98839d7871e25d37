package repository

import "github.com/easycashflows/api/internal/domain/entity"

// ResourceRepository porta di persistenza per i collaboratori.
type ResourceRepository interface {
	Create(res *entity.Resource) error
	GetByID(id string) (*entity.Resource, error)
	Update(res *entity.Resource) error
	ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Resource, error)
	Delete(id string) error
}
