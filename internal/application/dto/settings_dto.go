package dto

import "time"

// ── Notifiche (WhatsApp + email) ─────────────────────────────────────────────

// SaveNotificationSettingsRequest configura i canali di notifica dell'azienda.
// I campi credenziali sono richiesti solo per il provider selezionato; la
// presenza viene verificata nel caso d'uso.
type SaveNotificationSettingsRequest struct {
	WhatsAppEnabled  bool   `json:"whatsapp_enabled"`
	WhatsAppProvider string `json:"whatsapp_provider" validate:"omitempty,oneof=twilio linkmobility"`
	TwilioAccountSID string `json:"twilio_account_sid"`
	TwilioAuthToken  string `json:"twilio_auth_token"`
	TwilioFromNumber string `json:"twilio_from_number"`
	LinkMobilityKey  string `json:"linkmobility_key"`
	LinkMobilityURL  string `json:"linkmobility_url" validate:"omitempty,url"`

	EmailEnabled   bool   `json:"email_enabled"`
	EmailProvider  string `json:"email_provider" validate:"omitempty,oneof=sendgrid smtp"`
	SendGridAPIKey string `json:"sendgrid_api_key"`
	FromEmail      string `json:"from_email" validate:"omitempty,email"`
	FromName       string `json:"from_name" validate:"omitempty,max=100"`
	SMTPHost       string `json:"smtp_host"`
	SMTPPort       int    `json:"smtp_port" validate:"omitempty,min=1,max=65535"`
	SMTPUser       string `json:"smtp_user"`
	SMTPPassword   string `json:"smtp_password"`

	NotifyOnMovement bool `json:"notify_on_movement"`
	NotifyOnDeadline bool `json:"notify_on_deadline"`
}

// NotificationSettingsResponse output delle impostazioni di notifica.
// Le credenziali vengono restituite mascherate.
type NotificationSettingsResponse struct {
	WhatsAppEnabled  bool   `json:"whatsapp_enabled"`
	WhatsAppProvider string `json:"whatsapp_provider"`
	TwilioAccountSID string `json:"twilio_account_sid,omitempty"`
	TwilioFromNumber string `json:"twilio_from_number,omitempty"`
	LinkMobilityURL  string `json:"linkmobility_url,omitempty"`

	EmailEnabled  bool   `json:"email_enabled"`
	EmailProvider string `json:"email_provider"`
	FromEmail     string `json:"from_email,omitempty"`
	FromName      string `json:"from_name,omitempty"`
	SMTPHost      string `json:"smtp_host,omitempty"`
	SMTPPort      int    `json:"smtp_port,omitempty"`

	NotifyOnMovement bool      `json:"notify_on_movement"`
	NotifyOnDeadline bool      `json:"notify_on_deadline"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TestNotificationRequest destinatario del messaggio di prova.
type TestNotificationRequest struct {
	Channel string `json:"channel" validate:"required,oneof=whatsapp email"`
	To      string `json:"to" validate:"required"`
}

// ── Backup ───────────────────────────────────────────────────────────────────

// SaveBackupSettingsRequest configura il provider di backup.
type SaveBackupSettingsRequest struct {
	Provider           string `json:"provider" validate:"required,oneof=gcs s3 azure"`
	Bucket             string `json:"bucket" validate:"required,min=3,max=222"`
	GCSCredentialsJSON string `json:"gcs_credentials_json"`
	S3AccessKeyID      string `json:"s3_access_key_id"`
	S3SecretAccessKey  string `json:"s3_secret_access_key"`
	S3Region           string `json:"s3_region"`
	AzureAccountName   string `json:"azure_account_name"`
	AzureAccountKey    string `json:"azure_account_key"`
	Schedule           string `json:"schedule" validate:"required,oneof=daily weekly monthly"`
	Enabled            bool   `json:"enabled"`
}

// BackupSettingsResponse output della configurazione di backup (senza credenziali).
type BackupSettingsResponse struct {
	Provider  string     `json:"provider"`
	Bucket    string     `json:"bucket"`
	Schedule  string     `json:"schedule"`
	Enabled   bool       `json:"enabled"`
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BackupRunResponse esito di uno snapshot di backup.
type BackupRunResponse struct {
	ObjectKey string    `json:"object_key"`
	SizeBytes int64     `json:"size_bytes"`
	RanAt     time.Time `json:"ran_at"`
}

// ── Sicurezza ────────────────────────────────────────────────────────────────

// SaveSecuritySettingsRequest aggiorna la riga singleton di sicurezza.
type SaveSecuritySettingsRequest struct {
	RateLimitEnabled      bool `json:"rate_limit_enabled"`
	RequestsPerMinute     int  `json:"requests_per_minute" validate:"required,min=10,max=10000"`
	LoginMaxAttempts      int  `json:"login_max_attempts" validate:"required,min=3,max=100"`
	LoginWindowMinutes    int  `json:"login_window_minutes" validate:"required,min=1,max=1440"`
	SessionTimeoutMinutes int  `json:"session_timeout_minutes" validate:"required,min=5,max=1440"`
}

// SecuritySettingsResponse output delle impostazioni di sicurezza.
type SecuritySettingsResponse struct {
	RateLimitEnabled      bool      `json:"rate_limit_enabled"`
	RequestsPerMinute     int       `json:"requests_per_minute"`
	LoginMaxAttempts      int       `json:"login_max_attempts"`
	LoginWindowMinutes    int       `json:"login_window_minutes"`
	SessionTimeoutMinutes int       `json:"session_timeout_minutes"`
	UpdatedAt             time.Time `json:"updated_at"`
}
