package repository

import "github.com/easycashflows/api/internal/domain/entity"

// StatusRepository porta di persistenza per gli stati dei movimenti.
type StatusRepository interface {
	Create(status *entity.MovementStatus) error
	GetByID(id string) (*entity.MovementStatus, error)
	GetByName(name string) (*entity.MovementStatus, error)
	Update(status *entity.MovementStatus) error
	List(limit, offset int, onlyActive bool) ([]*entity.MovementStatus, error)
	Delete(id string) error
}
