package repository

import "github.com/easycashflows/api/internal/domain/entity"

// CoreRepository porta di persistenza per le linee di business.
type CoreRepository interface {
	Create(core *entity.Core) error
	GetByID(id string) (*entity.Core, error)
	Update(core *entity.Core) error
	ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Core, error)
	Delete(id string) error
}
