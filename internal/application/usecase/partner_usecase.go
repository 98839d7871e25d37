package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
	"github.com/easycashflows/api/pkg/iban"
)

// normalizePartnerIBAN normalizza e valida l'IBAN del partner, se presente.
func normalizePartnerIBAN(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	normalized := iban.Normalize(raw)
	if err := iban.Validate(normalized); err != nil {
		return "", domain.ErrInvalidInput
	}
	return normalized, nil
}

// SupplierUseCase gestisce l'anagrafica fornitori. Fornitori e clienti
// condividono i DTO (stessa forma), non la persistenza.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase costruisce lo use case.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un nuovo fornitore. domain.ErrDuplicate se la P.IVA esiste già.
func (uc *SupplierUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.VATNumber != "" {
		existing, _ := uc.repo.GetByVATNumber(in.VATNumber)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	accountIBAN, err := normalizePartnerIBAN(in.IBAN)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		VATNumber: in.VATNumber,
		TaxCode:   in.TaxCode,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		IBAN:      accountIBAN,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return supplierToPartnerResponse(s), nil
}

// GetByID recupera un fornitore.
func (uc *SupplierUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return supplierToPartnerResponse(s), nil
}

// Update aggiorna i campi presenti nella richiesta.
func (uc *SupplierUseCase) Update(id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&s.Name, in.Name)
	applyString(&s.TaxCode, in.TaxCode)
	applyString(&s.Address, in.Address)
	applyString(&s.Email, in.Email)
	applyString(&s.Phone, in.Phone)
	if in.IBAN != nil {
		accountIBAN, err := normalizePartnerIBAN(*in.IBAN)
		if err != nil {
			return nil, err
		}
		s.IBAN = accountIBAN
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return supplierToPartnerResponse(s), nil
}

// List elenca i fornitori.
func (uc *SupplierUseCase) List(page dto.PageRequest, onlyActive bool) (*dto.PartnerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *supplierToPartnerResponse(s))
	}
	return &dto.PartnerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un fornitore. domain.ErrInUse se referenziato da movimenti.
func (uc *SupplierUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func supplierToPartnerResponse(s *entity.Supplier) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:        s.ID,
		Name:      s.Name,
		VATNumber: s.VATNumber,
		TaxCode:   s.TaxCode,
		Address:   s.Address,
		Email:     s.Email,
		Phone:     s.Phone,
		IBAN:      s.IBAN,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// CustomerUseCase gestisce l'anagrafica clienti.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase costruisce lo use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuovo cliente. domain.ErrDuplicate se la P.IVA esiste già.
func (uc *CustomerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.VATNumber != "" {
		existing, _ := uc.repo.GetByVATNumber(in.VATNumber)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	accountIBAN, err := normalizePartnerIBAN(in.IBAN)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		VATNumber: in.VATNumber,
		TaxCode:   in.TaxCode,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		IBAN:      accountIBAN,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return customerToPartnerResponse(c), nil
}

// GetByID recupera un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return customerToPartnerResponse(c), nil
}

// Update aggiorna i campi presenti nella richiesta.
func (uc *CustomerUseCase) Update(id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&c.Name, in.Name)
	applyString(&c.TaxCode, in.TaxCode)
	applyString(&c.Address, in.Address)
	applyString(&c.Email, in.Email)
	applyString(&c.Phone, in.Phone)
	if in.IBAN != nil {
		accountIBAN, err := normalizePartnerIBAN(*in.IBAN)
		if err != nil {
			return nil, err
		}
		c.IBAN = accountIBAN
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return customerToPartnerResponse(c), nil
}

// List elenca i clienti.
func (uc *CustomerUseCase) List(page dto.PageRequest, onlyActive bool) (*dto.PartnerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *customerToPartnerResponse(c))
	}
	return &dto.PartnerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un cliente. domain.ErrInUse se referenziato da movimenti.
func (uc *CustomerUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func customerToPartnerResponse(c *entity.Customer) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:        c.ID,
		Name:      c.Name,
		VATNumber: c.VATNumber,
		TaxCode:   c.TaxCode,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		IBAN:      c.IBAN,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
