package repository

import "github.com/easycashflows/api/internal/domain/entity"

// CompanyRepository definisce la porta di persistenza per Company (DIP).
// L'implementazione vive in infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByVATNumber(vat string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int, onlyActive bool) ([]*entity.Company, error)
	Delete(id string) error
}
