package usecase

import (
	"time"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain/repository"
)

// SecurityUseCase legge e aggiorna la riga singleton che pilota il
// middleware di sicurezza (rate limiting, finestra di login, sessioni).
type SecurityUseCase struct {
	repo repository.SecuritySettingsRepository
}

// NewSecurityUseCase costruisce lo use case.
func NewSecurityUseCase(repo repository.SecuritySettingsRepository) *SecurityUseCase {
	return &SecurityUseCase{repo: repo}
}

// Get restituisce le impostazioni correnti (o i default applicativi).
func (uc *SecurityUseCase) Get() (*dto.SecuritySettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return &dto.SecuritySettingsResponse{
		RateLimitEnabled:      s.RateLimitEnabled,
		RequestsPerMinute:     s.RequestsPerMinute,
		LoginMaxAttempts:      s.LoginMaxAttempts,
		LoginWindowMinutes:    s.LoginWindowMinutes,
		SessionTimeoutMinutes: s.SessionTimeoutMinutes,
		UpdatedAt:             s.UpdatedAt,
	}, nil
}

// Save aggiorna le impostazioni. Il middleware le rilegge al prossimo
// scadere del TTL: l'effetto non è istantaneo.
func (uc *SecurityUseCase) Save(in dto.SaveSecuritySettingsRequest) (*dto.SecuritySettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	s.RateLimitEnabled = in.RateLimitEnabled
	s.RequestsPerMinute = in.RequestsPerMinute
	s.LoginMaxAttempts = in.LoginMaxAttempts
	s.LoginWindowMinutes = in.LoginWindowMinutes
	s.SessionTimeoutMinutes = in.SessionTimeoutMinutes
	s.UpdatedAt = time.Now()

	if err := uc.repo.Save(s); err != nil {
		return nil, err
	}
	return uc.Get()
}
