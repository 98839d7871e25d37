package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/easycashflows/api/internal/application/ports"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer invia email via SMTP autenticato (gomail). Per i clienti che
// usano il proprio server di posta invece di SendGrid.
type SMTPMailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

// NewSMTPMailer costruisce l'adapter.
func NewSMTPMailer(host string, port int, user, password, fromEmail, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, user, password),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send invia l'email. gomail non accetta un context: la cancellazione viene
// controllata prima dell'invio, il timeout lo dà il dialer.
func (s *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: invio fallito: %w", err)
	}
	return nil
}
