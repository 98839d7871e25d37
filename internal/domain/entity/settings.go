package entity

import "time"

// Provider WhatsApp supportati.
const (
	WhatsAppProviderTwilio       = "twilio"
	WhatsAppProviderLinkMobility = "linkmobility"
)

// Provider email supportati.
const (
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSMTP     = "smtp"
)

// NotificationSettings configura i canali di notifica per azienda
// (WhatsApp Business ed email). Una riga per company.
type NotificationSettings struct {
	ID        string
	CompanyID string

	// WhatsApp
	WhatsAppEnabled  bool
	WhatsAppProvider string // twilio | linkmobility
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string // numero mittente WhatsApp in E.164
	LinkMobilityKey  string
	LinkMobilityURL  string

	// Email
	EmailEnabled   bool
	EmailProvider  string // sendgrid | smtp
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string

	// Eventi che generano notifiche
	NotifyOnMovement bool
	NotifyOnDeadline bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Provider di backup supportati. Solo GCS è implementato realmente;
// S3 e Azure validano le credenziali e restituiscono un errore descrittivo.
const (
	BackupProviderGCS   = "gcs"
	BackupProviderS3    = "s3"
	BackupProviderAzure = "azure"
)

// Frequenze di backup pianificato.
const (
	BackupScheduleDaily   = "daily"
	BackupScheduleWeekly  = "weekly"
	BackupScheduleMonthly = "monthly"
)

// BackupSettings configura il provider di backup per azienda.
type BackupSettings struct {
	ID        string
	CompanyID string
	Provider  string // gcs | s3 | azure
	Bucket    string // bucket GCS/S3 o container Azure

	// Credenziali per provider: una sola sezione valorizzata alla volta
	GCSCredentialsJSON string
	S3AccessKeyID      string
	S3SecretAccessKey  string
	S3Region           string
	AzureAccountName   string
	AzureAccountKey    string

	Schedule  string // daily | weekly | monthly
	Enabled   bool
	LastRunAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SecuritySettings è la riga singleton che pilota il middleware di sicurezza.
// Il middleware rilegge questi valori dal DB con un TTL (non a ogni richiesta).
type SecuritySettings struct {
	ID                    string
	RateLimitEnabled      bool
	RequestsPerMinute     int // limite generale per IP
	LoginMaxAttempts      int // limite della rotta di login
	LoginWindowMinutes    int
	SessionTimeoutMinutes int
	UpdatedAt             time.Time
}
