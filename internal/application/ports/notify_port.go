package ports

import (
	"context"

	"github.com/easycashflows/api/internal/domain/entity"
)

// Mailer porta di uscita per l'invio email. Gli adapter (SendGrid, SMTP)
// vengono costruiti a partire dalle NotificationSettings dell'azienda.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// WhatsAppSender porta di uscita per i messaggi WhatsApp Business.
// `to` è un numero già normalizzato in E.164.
type WhatsAppSender interface {
	Send(ctx context.Context, to, message string) error
}

// MailerFactory costruisce il Mailer dal provider configurato.
// Restituisce domain.ErrNotConfigured se le credenziali mancano.
type MailerFactory interface {
	ForSettings(settings *entity.NotificationSettings) (Mailer, error)
}

// WhatsAppFactory costruisce il WhatsAppSender dal provider configurato.
type WhatsAppFactory interface {
	ForSettings(settings *entity.NotificationSettings) (WhatsAppSender, error)
}
