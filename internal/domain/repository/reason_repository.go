package repository

import "github.com/easycashflows/api/internal/domain/entity"

// ReasonRepository porta di persistenza per le causali dei movimenti.
type ReasonRepository interface {
	Create(reason *entity.MovementReason) error
	GetByID(id string) (*entity.MovementReason, error)
	GetByName(name string) (*entity.MovementReason, error)
	Update(reason *entity.MovementReason) error
	List(limit, offset int, onlyActive bool) ([]*entity.MovementReason, error)
	Delete(id string) error
}
