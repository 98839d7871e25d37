package usecase

import (
	"time"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// UserUseCase gestione amministrativa degli utenti. La registrazione e il
// login vivono nel package auth: qui solo profilo, ruolo e disattivazione.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase costruisce lo use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID recupera un utente.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return entityToUserResponse(u), nil
}

// Update aggiorna nome, ruolo e stato attivo. Email e password non si
// toccano da qui.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&u.FirstName, in.FirstName)
	applyString(&u.LastName, in.LastName)
	if in.Role != nil {
		switch *in.Role {
		case entity.RoleAdmin, entity.RoleCashflow, entity.RoleUser:
			u.Role = *in.Role
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.UpdatedAt = time.Now()

	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// ListByCompany elenca gli utenti di un'azienda.
func (uc *UserUseCase) ListByCompany(companyID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un utente.
func (uc *UserUseCase) Delete(id string) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
