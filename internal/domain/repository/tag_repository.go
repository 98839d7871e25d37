package repository

import "github.com/easycashflows/api/internal/domain/entity"

// TagRepository porta di persistenza per le etichette.
type TagRepository interface {
	Create(tag *entity.Tag) error
	GetByID(id string) (*entity.Tag, error)
	GetByName(name string) (*entity.Tag, error)
	Update(tag *entity.Tag) error
	List(limit, offset int, onlyActive bool) ([]*entity.Tag, error)
	Delete(id string) error
}
