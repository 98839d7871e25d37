package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// CoreUseCase gestisce le linee di business di un'azienda.
type CoreUseCase struct {
	repo        repository.CoreRepository
	companyRepo repository.CompanyRepository
}

// NewCoreUseCase costruisce lo use case.
func NewCoreUseCase(repo repository.CoreRepository, companyRepo repository.CompanyRepository) *CoreUseCase {
	return &CoreUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una nuova linea di business sotto un'azienda attiva.
func (uc *CoreUseCase) Create(in dto.CreateCoreRequest) (*dto.CoreResponse, error) {
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
	core := &entity.Core{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(core); err != nil {
		return nil, err
	}
	return entityToCoreResponse(core), nil
}

// GetByID recupera una linea di business.
func (uc *CoreUseCase) GetByID(id string) (*dto.CoreResponse, error) {
	core, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if core == nil {
		return nil, nil
	}
	return entityToCoreResponse(core), nil
}

// Update aggiorna i campi presenti nella richiesta.
func (uc *CoreUseCase) Update(id string, in dto.UpdateCoreRequest) (*dto.CoreResponse, error) {
	core, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if core == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&core.Name, in.Name)
	applyString(&core.Description, in.Description)
	if in.IsActive != nil {
		core.IsActive = *in.IsActive
	}
	core.UpdatedAt = time.Now()

	if err := uc.repo.Update(core); err != nil {
		return nil, err
	}
	return entityToCoreResponse(core), nil
}

// ListByCompany elenca le linee di business di un'azienda.
func (uc *CoreUseCase) ListByCompany(companyID string, page dto.PageRequest, onlyActive bool) (*dto.CoreListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CoreResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCoreResponse(c))
	}
	return &dto.CoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una linea di business. domain.ErrInUse se referenziata.
func (uc *CoreUseCase) Delete(id string) error {
	core, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if core == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToCoreResponse(c *entity.Core) *dto.CoreResponse {
	return &dto.CoreResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
