package repository

import "github.com/easycashflows/api/internal/domain/entity"

// SupplierRepository porta di persistenza per i fornitori.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByVATNumber(vat string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int, onlyActive bool) ([]*entity.Supplier, error)
	Delete(id string) error
}
