package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// CompanyUseCase applica le regole di business per le aziende.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase costruisce lo use case con la porta di persistenza.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nuova azienda. Genera ID e stato iniziale.
// Restituisce domain.ErrDuplicate se la partita IVA esiste già.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByVATNumber(in.VATNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	country := in.Country
	if country == "" {
		country = "IT"
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		VATNumber: in.VATNumber,
		TaxCode:   in.TaxCode,
		Address:   in.Address,
		City:      in.City,
		ZIP:       in.ZIP,
		Country:   country,
		Phone:     in.Phone,
		Email:     in.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID recupera un'azienda per ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// Update aggiorna i campi presenti nella richiesta. La partita IVA non si tocca.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&company.Name, in.Name)
	applyString(&company.TaxCode, in.TaxCode)
	applyString(&company.Address, in.Address)
	applyString(&company.City, in.City)
	applyString(&company.ZIP, in.ZIP)
	applyString(&company.Country, in.Country)
	applyString(&company.Phone, in.Phone)
	applyString(&company.Email, in.Email)
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List elenca le aziende con paginazione.
func (uc *CompanyUseCase) List(page dto.PageRequest, onlyActive bool) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un'azienda. domain.ErrInUse se ha movimenti o anagrafiche.
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		VATNumber: c.VATNumber,
		TaxCode:   c.TaxCode,
		Address:   c.Address,
		City:      c.City,
		ZIP:       c.ZIP,
		Country:   c.Country,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// applyString copia il valore se il puntatore non è nil (patch parziale).
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
