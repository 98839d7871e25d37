package email

import (
	"fmt"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
)

var _ ports.MailerFactory = (*MailerFactory)(nil)

// MailerFactory costruisce il Mailer dal provider configurato nelle
// impostazioni di notifica dell'azienda.
type MailerFactory struct{}

// NewMailerFactory costruisce la factory.
func NewMailerFactory() *MailerFactory {
	return &MailerFactory{}
}

// ForSettings restituisce il mailer per il provider configurato.
// domain.ErrNotConfigured se il canale è spento o le credenziali mancano.
func (f *MailerFactory) ForSettings(settings *entity.NotificationSettings) (ports.Mailer, error) {
	if settings == nil || !settings.EmailEnabled {
		return nil, domain.ErrNotConfigured
	}

	switch settings.EmailProvider {
	case entity.EmailProviderSendGrid:
		if settings.SendGridAPIKey == "" || settings.FromEmail == "" {
			return nil, domain.ErrNotConfigured
		}
		return NewSendGridMailer(settings.SendGridAPIKey, settings.FromEmail, settings.FromName), nil
	case entity.EmailProviderSMTP:
		if settings.SMTPHost == "" || settings.SMTPPort == 0 || settings.FromEmail == "" {
			return nil, domain.ErrNotConfigured
		}
		return NewSMTPMailer(settings.SMTPHost, settings.SMTPPort, settings.SMTPUser,
			settings.SMTPPassword, settings.FromEmail, settings.FromName), nil
	default:
		return nil, fmt.Errorf("provider email sconosciuto: %q", settings.EmailProvider)
	}
}
