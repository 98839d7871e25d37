package repository

import "github.com/easycashflows/api/internal/domain/entity"

// UserRepository definisce la porta di persistenza per User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
