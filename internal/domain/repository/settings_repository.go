package repository

import "github.com/easycashflows/api/internal/domain/entity"

// NotificationSettingsRepository porta di persistenza per le impostazioni di notifica.
// Get restituisce (nil, nil) se l'azienda non ha ancora una configurazione.
type NotificationSettingsRepository interface {
	GetByCompany(companyID string) (*entity.NotificationSettings, error)
	Save(settings *entity.NotificationSettings) error // upsert su company_id
}

// BackupSettingsRepository porta di persistenza per la configurazione di backup.
type BackupSettingsRepository interface {
	GetByCompany(companyID string) (*entity.BackupSettings, error)
	Save(settings *entity.BackupSettings) error // upsert su company_id
}

// SecuritySettingsRepository porta di persistenza per la riga singleton di sicurezza.
// Get restituisce i default applicativi se la riga non esiste ancora.
type SecuritySettingsRepository interface {
	Get() (*entity.SecuritySettings, error)
	Save(settings *entity.SecuritySettings) error
}
