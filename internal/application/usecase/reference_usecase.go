package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// StatusUseCase gestisce gli stati movimento (valori liberi, nessuna
// macchina a stati).
type StatusUseCase struct {
	repo repository.StatusRepository
}

// NewStatusUseCase costruisce lo use case.
func NewStatusUseCase(repo repository.StatusRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

// Create crea un nuovo stato. domain.ErrDuplicate se il nome esiste già.
func (uc *StatusUseCase) Create(in dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	s := &entity.MovementStatus{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return statusToReferenceResponse(s), nil
}

// GetByID recupera uno stato.
func (uc *StatusUseCase) GetByID(id string) (*dto.ReferenceResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return statusToReferenceResponse(s), nil
}

// Update aggiorna uno stato.
func (uc *StatusUseCase) Update(id string, in dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&s.Name, in.Name)
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return statusToReferenceResponse(s), nil
}

// List elenca gli stati.
func (uc *StatusUseCase) List(page dto.PageRequest, onlyActive bool) (*dto.ReferenceListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *statusToReferenceResponse(s))
	}
	return &dto.ReferenceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina uno stato. domain.ErrInUse se referenziato da movimenti.
func (uc *StatusUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func statusToReferenceResponse(s *entity.MovementStatus) *dto.ReferenceResponse {
	return &dto.ReferenceResponse{
		ID:        s.ID,
		Name:      s.Name,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ReasonUseCase gestisce le causali movimento.
type ReasonUseCase struct {
	repo repository.ReasonRepository
}

// NewReasonUseCase costruisce lo use case.
func NewReasonUseCase(repo repository.ReasonRepository) *ReasonUseCase {
	return &ReasonUseCase{repo: repo}
}

// Create crea una nuova causale. domain.ErrDuplicate se il nome esiste già.
func (uc *ReasonUseCase) Create(in dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	r := &entity.MovementReason{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return reasonToReferenceResponse(r), nil
}

// GetByID recupera una causale.
func (uc *ReasonUseCase) GetByID(id string) (*dto.ReferenceResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return reasonToReferenceResponse(r), nil
}

// Update aggiorna una causale.
func (uc *ReasonUseCase) Update(id string, in dto.UpdateReferenceRequest) (*dto.ReferenceResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&r.Name, in.Name)
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	r.UpdatedAt = time.Now()

	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return reasonToReferenceResponse(r), nil
}

// List elenca le causali.
func (uc *ReasonUseCase) List(page dto.PageRequest, onlyActive bool) (*dto.ReferenceListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *reasonToReferenceResponse(r))
	}
	return &dto.ReferenceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una causale. domain.ErrInUse se referenziata da movimenti.
func (uc *ReasonUseCase) Delete(id string) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func reasonToReferenceResponse(r *entity.MovementReason) *dto.ReferenceResponse {
	return &dto.ReferenceResponse{
		ID:        r.ID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
