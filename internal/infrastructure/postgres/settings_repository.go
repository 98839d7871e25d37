package postgres

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

var (
	_ repository.NotificationSettingsRepository = (*NotificationSettingsRepo)(nil)
	_ repository.BackupSettingsRepository       = (*BackupSettingsRepo)(nil)
	_ repository.SecuritySettingsRepository     = (*SecuritySettingsRepo)(nil)
)

// NotificationSettingsRepo persistenza delle impostazioni di notifica.
type NotificationSettingsRepo struct {
	q Querier
}

// NewNotificationSettingsRepository costruisce l'adapter.
func NewNotificationSettingsRepository(q Querier) *NotificationSettingsRepo {
	return &NotificationSettingsRepo{q: q}
}

const notificationColumns = `id, company_id,
	whatsapp_enabled, whatsapp_provider, twilio_account_sid, twilio_auth_token, twilio_from_number,
	linkmobility_key, linkmobility_url,
	email_enabled, email_provider, sendgrid_api_key, from_email, from_name,
	smtp_host, smtp_port, smtp_user, smtp_password,
	notify_on_movement, notify_on_deadline, created_at, updated_at`

// GetByCompany recupera le impostazioni di notifica di un'azienda.
// Restituisce (nil, nil) se non ancora configurate.
func (r *NotificationSettingsRepo) GetByCompany(companyID string) (*entity.NotificationSettings, error) {
	query := `SELECT ` + notificationColumns + ` FROM notification_settings WHERE company_id = $1`
	var s entity.NotificationSettings
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&s.ID, &s.CompanyID,
		&s.WhatsAppEnabled, &s.WhatsAppProvider, &s.TwilioAccountSID, &s.TwilioAuthToken, &s.TwilioFromNumber,
		&s.LinkMobilityKey, &s.LinkMobilityURL,
		&s.EmailEnabled, &s.EmailProvider, &s.SendGridAPIKey, &s.FromEmail, &s.FromName,
		&s.SMTPHost, &s.SMTPPort, &s.SMTPUser, &s.SMTPPassword,
		&s.NotifyOnMovement, &s.NotifyOnDeadline, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification settings: %w", err)
	}
	return &s, nil
}

// Save esegue l'upsert sulla chiave company_id.
func (r *NotificationSettingsRepo) Save(s *entity.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (company_id) DO UPDATE SET
			whatsapp_enabled = EXCLUDED.whatsapp_enabled,
			whatsapp_provider = EXCLUDED.whatsapp_provider,
			twilio_account_sid = EXCLUDED.twilio_account_sid,
			twilio_auth_token = EXCLUDED.twilio_auth_token,
			twilio_from_number = EXCLUDED.twilio_from_number,
			linkmobility_key = EXCLUDED.linkmobility_key,
			linkmobility_url = EXCLUDED.linkmobility_url,
			email_enabled = EXCLUDED.email_enabled,
			email_provider = EXCLUDED.email_provider,
			sendgrid_api_key = EXCLUDED.sendgrid_api_key,
			from_email = EXCLUDED.from_email,
			from_name = EXCLUDED.from_name,
			smtp_host = EXCLUDED.smtp_host,
			smtp_port = EXCLUDED.smtp_port,
			smtp_user = EXCLUDED.smtp_user,
			smtp_password = EXCLUDED.smtp_password,
			notify_on_movement = EXCLUDED.notify_on_movement,
			notify_on_deadline = EXCLUDED.notify_on_deadline,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CompanyID,
		s.WhatsAppEnabled, s.WhatsAppProvider, s.TwilioAccountSID, s.TwilioAuthToken, s.TwilioFromNumber,
		s.LinkMobilityKey, s.LinkMobilityURL,
		s.EmailEnabled, s.EmailProvider, s.SendGridAPIKey, s.FromEmail, s.FromName,
		s.SMTPHost, s.SMTPPort, s.SMTPUser, s.SMTPPassword,
		s.NotifyOnMovement, s.NotifyOnDeadline, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save notification settings: %w", err)
	}
	return nil
}

// BackupSettingsRepo persistenza della configurazione di backup.
type BackupSettingsRepo struct {
	q Querier
}

// NewBackupSettingsRepository costruisce l'adapter.
func NewBackupSettingsRepository(q Querier) *BackupSettingsRepo {
	return &BackupSettingsRepo{q: q}
}

const backupColumns = `id, company_id, provider, bucket,
	gcs_credentials_json, s3_access_key_id, s3_secret_access_key, s3_region,
	azure_account_name, azure_account_key,
	schedule, enabled, last_run_at, created_at, updated_at`

// GetByCompany recupera la configurazione di backup di un'azienda.
func (r *BackupSettingsRepo) GetByCompany(companyID string) (*entity.BackupSettings, error) {
	query := `SELECT ` + backupColumns + ` FROM backup_settings WHERE company_id = $1`
	var s entity.BackupSettings
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.Provider, &s.Bucket,
		&s.GCSCredentialsJSON, &s.S3AccessKeyID, &s.S3SecretAccessKey, &s.S3Region,
		&s.AzureAccountName, &s.AzureAccountKey,
		&s.Schedule, &s.Enabled, &s.LastRunAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get backup settings: %w", err)
	}
	return &s, nil
}

// Save esegue l'upsert sulla chiave company_id.
func (r *BackupSettingsRepo) Save(s *entity.BackupSettings) error {
	query := `
		INSERT INTO backup_settings (` + backupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (company_id) DO UPDATE SET
			provider = EXCLUDED.provider,
			bucket = EXCLUDED.bucket,
			gcs_credentials_json = EXCLUDED.gcs_credentials_json,
			s3_access_key_id = EXCLUDED.s3_access_key_id,
			s3_secret_access_key = EXCLUDED.s3_secret_access_key,
			s3_region = EXCLUDED.s3_region,
			azure_account_name = EXCLUDED.azure_account_name,
			azure_account_key = EXCLUDED.azure_account_key,
			schedule = EXCLUDED.schedule,
			enabled = EXCLUDED.enabled,
			last_run_at = EXCLUDED.last_run_at,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CompanyID, s.Provider, s.Bucket,
		s.GCSCredentialsJSON, s.S3AccessKeyID, s.S3SecretAccessKey, s.S3Region,
		s.AzureAccountName, s.AzureAccountKey,
		s.Schedule, s.Enabled, s.LastRunAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save backup settings: %w", err)
	}
	return nil
}

// securitySettingsID è la chiave della riga singleton.
const securitySettingsID = "default"

// SecuritySettingsRepo persistenza della riga singleton di sicurezza.
type SecuritySettingsRepo struct {
	q Querier
}

// NewSecuritySettingsRepository costruisce l'adapter.
func NewSecuritySettingsRepository(q Querier) *SecuritySettingsRepo {
	return &SecuritySettingsRepo{q: q}
}

// Get recupera la configurazione di sicurezza. Se la riga non esiste ancora
// restituisce i default applicativi senza errore.
func (r *SecuritySettingsRepo) Get() (*entity.SecuritySettings, error) {
	query := `SELECT id, rate_limit_enabled, requests_per_minute, login_max_attempts,
		login_window_minutes, session_timeout_minutes, updated_at
		FROM security_settings WHERE id = $1`
	var s entity.SecuritySettings
	err := r.q.QueryRow(context.Background(), query, securitySettingsID).Scan(
		&s.ID, &s.RateLimitEnabled, &s.RequestsPerMinute, &s.LoginMaxAttempts,
		&s.LoginWindowMinutes, &s.SessionTimeoutMinutes, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return defaultSecuritySettings(), nil
		}
		return nil, fmt.Errorf("get security settings: %w", err)
	}
	return &s, nil
}

// Save esegue l'upsert della riga singleton.
func (r *SecuritySettingsRepo) Save(s *entity.SecuritySettings) error {
	query := `
		INSERT INTO security_settings (id, rate_limit_enabled, requests_per_minute, login_max_attempts,
			login_window_minutes, session_timeout_minutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			rate_limit_enabled = EXCLUDED.rate_limit_enabled,
			requests_per_minute = EXCLUDED.requests_per_minute,
			login_max_attempts = EXCLUDED.login_max_attempts,
			login_window_minutes = EXCLUDED.login_window_minutes,
			session_timeout_minutes = EXCLUDED.session_timeout_minutes,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		securitySettingsID, s.RateLimitEnabled, s.RequestsPerMinute, s.LoginMaxAttempts,
		s.LoginWindowMinutes, s.SessionTimeoutMinutes, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save security settings: %w", err)
	}
	return nil
}

func defaultSecuritySettings() *entity.SecuritySettings {
	return &entity.SecuritySettings{
		ID:                    securitySettingsID,
		RateLimitEnabled:      true,
		RequestsPerMinute:     120,
		LoginMaxAttempts:      5,
		LoginWindowMinutes:    15,
		SessionTimeoutMinutes: 60,
	}
}
