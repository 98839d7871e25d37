package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// OfficeUseCase gestisce le sedi operative.
type OfficeUseCase struct {
	repo        repository.OfficeRepository
	companyRepo repository.CompanyRepository
}

// NewOfficeUseCase costruisce lo use case.
func NewOfficeUseCase(repo repository.OfficeRepository, companyRepo repository.CompanyRepository) *OfficeUseCase {
	return &OfficeUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una nuova sede sotto un'azienda attiva.
func (uc *OfficeUseCase) Create(in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !company.IsActive {
		return nil, domain.ErrInactiveReference
	}

	now := time.Now()
	office := &entity.Office{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(office); err != nil {
		return nil, err
	}
	return entityToOfficeResponse(office), nil
}

// GetByID recupera una sede.
func (uc *OfficeUseCase) GetByID(id string) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, nil
	}
	return entityToOfficeResponse(office), nil
}

// Update aggiorna i campi presenti nella richiesta.
func (uc *OfficeUseCase) Update(id string, in dto.UpdateOfficeRequest) (*dto.OfficeResponse, error) {
	office, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&office.Name, in.Name)
	applyString(&office.Address, in.Address)
	applyString(&office.City, in.City)
	if in.IsActive != nil {
		office.IsActive = *in.IsActive
	}
	office.UpdatedAt = time.Now()

	if err := uc.repo.Update(office); err != nil {
		return nil, err
	}
	return entityToOfficeResponse(office), nil
}

// ListByCompany elenca le sedi di un'azienda.
func (uc *OfficeUseCase) ListByCompany(companyID string, page dto.PageRequest, onlyActive bool) (*dto.OfficeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *entityToOfficeResponse(o))
	}
	return &dto.OfficeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una sede. domain.ErrInUse se referenziata.
func (uc *OfficeUseCase) Delete(id string) error {
	office, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if office == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	return &dto.OfficeResponse{
		ID:        o.ID,
		CompanyID: o.CompanyID,
		Name:      o.Name,
		Address:   o.Address,
		City:      o.City,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
