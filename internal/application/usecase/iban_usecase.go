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

// IBANUseCase gestisce i conti bancari aziendali e il loro collegamento
// ai provider open banking.
type IBANUseCase struct {
	repo        repository.IBANRepository
	companyRepo repository.CompanyRepository
}

// NewIBANUseCase costruisce lo use case.
func NewIBANUseCase(repo repository.IBANRepository, companyRepo repository.CompanyRepository) *IBANUseCase {
	return &IBANUseCase{repo: repo, companyRepo: companyRepo}
}

// Create registra un nuovo conto. L'IBAN viene normalizzato e validato con
// il check mod-97; domain.ErrDuplicate se già presente per l'azienda.
func (uc *IBANUseCase) Create(in dto.CreateIBANRequest) (*dto.IBANResponse, error) {
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

	normalized := iban.Normalize(in.Value)
	if err := iban.Validate(normalized); err != nil {
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.repo.GetByValue(in.CompanyID, normalized)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	account := &entity.IBAN{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		Value:       normalized,
		BankName:    in.BankName,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return entityToIBANResponse(account), nil
}

// GetByID recupera un conto.
func (uc *IBANUseCase) GetByID(id string) (*dto.IBANResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return entityToIBANResponse(account), nil
}

// Update aggiorna i campi descrittivi. L'IBAN in sé è immutabile:
// per cambiarlo si registra un nuovo conto.
func (uc *IBANUseCase) Update(id string, in dto.UpdateIBANRequest) (*dto.IBANResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	applyString(&account.BankName, in.BankName)
	applyString(&account.Description, in.Description)
	if in.IsActive != nil {
		account.IsActive = *in.IsActive
	}
	account.UpdatedAt = time.Now()

	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return entityToIBANResponse(account), nil
}

// ConfigureBanking collega il conto a un provider open banking.
// Ripetere la chiamata sovrascrive la configurazione precedente.
func (uc *IBANUseCase) ConfigureBanking(id string, in dto.ConfigureBankingRequest) (*dto.IBANResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	account.BankingProvider = in.Provider
	account.BankingAPIKey = in.APIKey
	account.AutoSync = in.AutoSync
	account.UpdatedAt = time.Now()

	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return entityToIBANResponse(account), nil
}

// DisconnectBanking rimuove il collegamento open banking dal conto.
func (uc *IBANUseCase) DisconnectBanking(id string) (*dto.IBANResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	account.BankingProvider = entity.BankingProviderNone
	account.BankingAPIKey = ""
	account.AutoSync = false
	account.UpdatedAt = time.Now()

	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return entityToIBANResponse(account), nil
}

// ListByCompany elenca i conti di un'azienda.
func (uc *IBANUseCase) ListByCompany(companyID string, page dto.PageRequest, onlyActive bool) (*dto.IBANListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IBANResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToIBANResponse(a))
	}
	return &dto.IBANListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un conto. domain.ErrInUse se referenziato da movimenti.
func (uc *IBANUseCase) Delete(id string) error {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// entityToIBANResponse non espone mai l'API key del provider.
func entityToIBANResponse(a *entity.IBAN) *dto.IBANResponse {
	return &dto.IBANResponse{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		Value:           a.Value,
		BankName:        a.BankName,
		Description:     a.Description,
		BankingProvider: a.BankingProvider,
		BankingLinked:   a.BankingProvider != entity.BankingProviderNone && a.BankingAPIKey != "",
		AutoSync:        a.AutoSync,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
