package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// ResourceUseCase gestisce i collaboratori associabili ai movimenti.
type ResourceUseCase struct {
	repo        repository.ResourceRepository
	companyRepo repository.CompanyRepository
}

// NewResourceUseCase costruisce lo use case.
func NewResourceUseCase(repo repository.ResourceRepository, companyRepo repository.CompanyRepository) *ResourceUseCase {
	return &ResourceUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un nuovo collaboratore sotto un'azienda attiva.
func (uc *ResourceUseCase) Create(in dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
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
	res := &entity.Resource{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(res); err != nil {
		return nil, err
	}
	return entityToResourceResponse(res), nil
}

// GetByID recupera un collaboratore.
func (uc *ResourceUseCase) GetByID(id string) (*dto.ResourceResponse, error) {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return entityToResourceResponse(res), nil
}

// Update aggiorna i campi presenti nella richiesta.
func (uc *ResourceUseCase) Update(id string, in dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&res.FirstName, in.FirstName)
	applyString(&res.LastName, in.LastName)
	applyString(&res.Email, in.Email)
	applyString(&res.Phone, in.Phone)
	applyString(&res.Role, in.Role)
	if in.IsActive != nil {
		res.IsActive = *in.IsActive
	}
	res.UpdatedAt = time.Now()

	if err := uc.repo.Update(res); err != nil {
		return nil, err
	}
	return entityToResourceResponse(res), nil
}

// ListByCompany elenca i collaboratori di un'azienda.
func (uc *ResourceUseCase) ListByCompany(companyID string, page dto.PageRequest, onlyActive bool) (*dto.ResourceListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResourceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToResourceResponse(r))
	}
	return &dto.ResourceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un collaboratore. domain.ErrInUse se referenziato.
func (uc *ResourceUseCase) Delete(id string) error {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if res == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToResourceResponse(r *entity.Resource) *dto.ResourceResponse {
	return &dto.ResourceResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
