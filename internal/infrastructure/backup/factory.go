package backup

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
)

var _ ports.BackupProviderFactory = (*ProviderFactory)(nil)

// ProviderFactory costruisce il provider di backup dalla configurazione salvata.
type ProviderFactory struct{}

// NewProviderFactory costruisce la factory.
func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

// ForSettings restituisce il provider configurato.
// domain.ErrNotConfigured se il bucket o le credenziali mancano.
func (f *ProviderFactory) ForSettings(ctx context.Context, settings *entity.BackupSettings) (ports.BackupProvider, error) {
	if settings == nil || settings.Bucket == "" {
		return nil, domain.ErrNotConfigured
	}

	switch settings.Provider {
	case entity.BackupProviderGCS:
		return NewGCSProvider(ctx, settings.Bucket, settings.GCSCredentialsJSON)
	case entity.BackupProviderS3:
		if settings.S3AccessKeyID == "" || settings.S3SecretAccessKey == "" {
			return nil, domain.ErrNotConfigured
		}
		return NewS3Provider(settings.Bucket, settings.S3Region), nil
	case entity.BackupProviderAzure:
		if settings.AzureAccountName == "" || settings.AzureAccountKey == "" {
			return nil, domain.ErrNotConfigured
		}
		return NewAzureProvider(settings.Bucket, settings.AzureAccountName), nil
	default:
		return nil, fmt.Errorf("provider di backup sconosciuto: %q", settings.Provider)
	}
}
