package repository

import "github.com/easycashflows/api/internal/domain/entity"

// CustomerRepository porta di persistenza per i clienti.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByVATNumber(vat string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int, onlyActive bool) ([]*entity.Customer, error)
	Delete(id string) error
}
