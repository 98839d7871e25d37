// Package backupsvc gestisce la configurazione del provider di backup e
// l'esecuzione degli snapshot.
package backupsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

const (
	backupTimeout = 60 * time.Second
	snapshotRows  = 50000 // tetto righe per snapshot
)

// UseCase configura il provider di backup ed esegue gli snapshot.
type UseCase struct {
	settingsRepo repository.BackupSettingsRepository
	movementRepo repository.MovementRepository
	factory      ports.BackupProviderFactory
	log          zerolog.Logger
}

// NewUseCase costruisce lo use case.
func NewUseCase(
	settingsRepo repository.BackupSettingsRepository,
	movementRepo repository.MovementRepository,
	factory ports.BackupProviderFactory,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		movementRepo: movementRepo,
		factory:      factory,
		log:          log,
	}
}

// SaveSettings salva la configurazione del provider (upsert per azienda).
func (uc *UseCase) SaveSettings(companyID string, in dto.SaveBackupSettingsRequest) (*dto.BackupSettingsResponse, error) {
	existing, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings := &entity.BackupSettings{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		CreatedAt: now,
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		settings.LastRunAt = existing.LastRunAt
	}

	settings.Provider = in.Provider
	settings.Bucket = in.Bucket
	settings.GCSCredentialsJSON = in.GCSCredentialsJSON
	settings.S3AccessKeyID = in.S3AccessKeyID
	settings.S3SecretAccessKey = in.S3SecretAccessKey
	settings.S3Region = in.S3Region
	settings.AzureAccountName = in.AzureAccountName
	settings.AzureAccountKey = in.AzureAccountKey
	settings.Schedule = in.Schedule
	settings.Enabled = in.Enabled
	settings.UpdatedAt = now

	if err := uc.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

// GetSettings restituisce la configurazione (senza credenziali).
func (uc *UseCase) GetSettings(companyID string) (*dto.BackupSettingsResponse, error) {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return settingsToResponse(settings), nil
}

// Test verifica connettività e permessi verso lo storage configurato.
func (uc *UseCase) Test(ctx context.Context, companyID string) error {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return err
	}
	if settings == nil {
		return domain.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	provider, err := uc.factory.ForSettings(ctx, settings)
	if err != nil {
		return err
	}
	return provider.Test(ctx)
}

// snapshot è il formato dello snapshot caricato sul provider.
type snapshot struct {
	CompanyID string             `json:"company_id"`
	TakenAt   time.Time          `json:"taken_at"`
	Movements []*entity.Movement `json:"movements"`
}

// Run esegue uno snapshot dei movimenti dell'azienda e lo carica sul
// provider. Aggiorna LastRunAt solo a upload riuscito.
func (uc *UseCase) Run(ctx context.Context, companyID string) (*dto.BackupRunResponse, error) {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil || !settings.Enabled {
		return nil, domain.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	provider, err := uc.factory.ForSettings(ctx, settings)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.List(repository.MovementFilter{
		CompanyID: companyID,
		Limit:     snapshotRows,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	data, err := json.Marshal(snapshot{
		CompanyID: companyID,
		TakenAt:   now,
		Movements: movements,
	})
	if err != nil {
		return nil, fmt.Errorf("backup: serializzazione snapshot: %w", err)
	}

	objectKey := fmt.Sprintf("easycashflows/%s/backup-%s.json", companyID, now.Format("20060102-150405"))
	if err := provider.Upload(ctx, objectKey, data); err != nil {
		return nil, fmt.Errorf("backup: upload snapshot: %w", err)
	}

	settings.LastRunAt = &now
	settings.UpdatedAt = now
	if err := uc.settingsRepo.Save(settings); err != nil {
		// Lo snapshot è sul bucket: l'errore di bookkeeping non lo invalida.
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("aggiornamento last_run_at fallito")
	}

	uc.log.Info().Str("company_id", companyID).Str("object_key", objectKey).
		Int("movements", len(movements)).Msg("backup completato")

	return &dto.BackupRunResponse{
		ObjectKey: objectKey,
		SizeBytes: int64(len(data)),
		RanAt:     now,
	}, nil
}

// ListSnapshots elenca le chiavi degli snapshot dell'azienda.
func (uc *UseCase) ListSnapshots(ctx context.Context, companyID string) ([]string, error) {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, backupTimeout)
	defer cancel()

	provider, err := uc.factory.ForSettings(ctx, settings)
	if err != nil {
		return nil, err
	}
	return provider.List(ctx, "easycashflows/"+companyID+"/")
}

func settingsToResponse(s *entity.BackupSettings) *dto.BackupSettingsResponse {
	return &dto.BackupSettingsResponse{
		Provider:  s.Provider,
		Bucket:    s.Bucket,
		Schedule:  s.Schedule,
		Enabled:   s.Enabled,
		LastRunAt: s.LastRunAt,
		UpdatedAt: s.UpdatedAt,
	}
}
