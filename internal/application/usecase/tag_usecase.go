package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// TagUseCase gestisce le etichette dei movimenti.
type TagUseCase struct {
	repo repository.TagRepository
}

// NewTagUseCase costruisce lo use case.
func NewTagUseCase(repo repository.TagRepository) *TagUseCase {
	return &TagUseCase{repo: repo}
}

// Create crea una nuova etichetta. domain.ErrDuplicate se il nome esiste già.
func (uc *TagUseCase) Create(in dto.CreateTagRequest) (*dto.TagResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	t := &entity.Tag{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Color:     in.Color,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return entityToTagResponse(t), nil
}

// GetByID recupera un'etichetta.
func (uc *TagUseCase) GetByID(id string) (*dto.TagResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return entityToTagResponse(t), nil
}

// Update aggiorna un'etichetta.
func (uc *TagUseCase) Update(id string, in dto.UpdateTagRequest) (*dto.TagResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&t.Name, in.Name)
	applyString(&t.Color, in.Color)
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	t.UpdatedAt = time.Now()

	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return entityToTagResponse(t), nil
}

// List elenca le etichette.
func (uc *TagUseCase) List(page dto.PageRequest, onlyActive bool) (*dto.TagListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *entityToTagResponse(t))
	}
	return &dto.TagListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un'etichetta. domain.ErrInUse se referenziata da movimenti.
func (uc *TagUseCase) Delete(id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToTagResponse(t *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
