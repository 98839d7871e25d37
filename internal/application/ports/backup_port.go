package ports

import (
	"context"

	"github.com/easycashflows/api/internal/domain/entity"
)

// BackupProvider porta di uscita verso uno storage di backup.
type BackupProvider interface {
	// Test verifica connettività e permessi (es. lettura attributi del bucket).
	Test(ctx context.Context) error
	// Upload carica lo snapshot e restituisce la chiave oggetto.
	Upload(ctx context.Context, objectKey string, data []byte) error
	// List elenca le chiavi degli snapshot esistenti sotto il prefisso.
	List(ctx context.Context, prefix string) ([]string, error)
	// Download legge uno snapshot esistente (per il restore in sola lettura).
	Download(ctx context.Context, objectKey string) ([]byte, error)
}

// BackupProviderFactory costruisce il provider dalla configurazione salvata.
// Restituisce domain.ErrNotConfigured se mancano le credenziali del provider.
type BackupProviderFactory interface {
	ForSettings(ctx context.Context, settings *entity.BackupSettings) (BackupProvider, error)
}
