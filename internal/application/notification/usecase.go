// Package notification gestisce la configurazione dei canali di notifica
// (WhatsApp Business, email) e l'invio dei messaggi.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
	"github.com/easycashflows/api/pkg/phone"
)

const (
	sendTimeout = 15 * time.Second

	// Destinatari massimi per notifica: i collaboratori attivi dell'azienda.
	notifyRecipientsMax = 50
)

// UseCase configura i canali e invia le notifiche per conto delle aziende.
type UseCase struct {
	settingsRepo repository.NotificationSettingsRepository
	resourceRepo repository.ResourceRepository
	mailers      ports.MailerFactory
	whatsapp     ports.WhatsAppFactory
	log          zerolog.Logger
}

// NewUseCase costruisce lo use case. resourceRepo serve a risolvere i
// destinatari delle notifiche automatiche (collaboratori attivi).
func NewUseCase(
	settingsRepo repository.NotificationSettingsRepository,
	resourceRepo repository.ResourceRepository,
	mailers ports.MailerFactory,
	whatsapp ports.WhatsAppFactory,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		resourceRepo: resourceRepo,
		mailers:      mailers,
		whatsapp:     whatsapp,
		log:          log,
	}
}

// SaveSettings salva la configurazione dei canali (upsert per azienda).
// Le credenziali del provider selezionato devono essere presenti: la factory
// fa da validatore prima della persistenza.
func (uc *UseCase) SaveSettings(companyID string, in dto.SaveNotificationSettingsRequest) (*dto.NotificationSettingsResponse, error) {
	existing, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings := &entity.NotificationSettings{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		CreatedAt: now,
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	}

	settings.WhatsAppEnabled = in.WhatsAppEnabled
	settings.WhatsAppProvider = in.WhatsAppProvider
	settings.TwilioAccountSID = in.TwilioAccountSID
	settings.TwilioAuthToken = in.TwilioAuthToken
	settings.LinkMobilityKey = in.LinkMobilityKey
	settings.LinkMobilityURL = in.LinkMobilityURL

	if in.TwilioFromNumber != "" {
		normalized, err := phone.Normalize(in.TwilioFromNumber)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		settings.TwilioFromNumber = normalized
	}

	settings.EmailEnabled = in.EmailEnabled
	settings.EmailProvider = in.EmailProvider
	settings.SendGridAPIKey = in.SendGridAPIKey
	settings.FromEmail = in.FromEmail
	settings.FromName = in.FromName
	settings.SMTPHost = in.SMTPHost
	settings.SMTPPort = in.SMTPPort
	settings.SMTPUser = in.SMTPUser
	settings.SMTPPassword = in.SMTPPassword

	settings.NotifyOnMovement = in.NotifyOnMovement
	settings.NotifyOnDeadline = in.NotifyOnDeadline
	settings.UpdatedAt = now

	// Le factory verificano che le credenziali del provider scelto ci siano.
	if settings.WhatsAppEnabled {
		if _, err := uc.whatsapp.ForSettings(settings); err != nil {
			return nil, err
		}
	}
	if settings.EmailEnabled {
		if _, err := uc.mailers.ForSettings(settings); err != nil {
			return nil, err
		}
	}

	if err := uc.settingsRepo.Save(settings); err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

// GetSettings restituisce la configurazione (credenziali mai in chiaro).
func (uc *UseCase) GetSettings(companyID string) (*dto.NotificationSettingsResponse, error) {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return settingsToResponse(settings), nil
}

// TestSend invia un messaggio di prova sul canale indicato.
func (uc *UseCase) TestSend(ctx context.Context, companyID string, in dto.TestNotificationRequest) error {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil {
		return err
	}
	if settings == nil {
		return domain.ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	switch in.Channel {
	case "whatsapp":
		sender, err := uc.whatsapp.ForSettings(settings)
		if err != nil {
			return err
		}
		to, err := phone.Normalize(in.To)
		if err != nil {
			return domain.ErrInvalidInput
		}
		return sender.Send(ctx, to, "Messaggio di prova EasyCashFlows: il canale WhatsApp funziona.")
	case "email":
		mailer, err := uc.mailers.ForSettings(settings)
		if err != nil {
			return err
		}
		return mailer.Send(ctx, in.To,
			"EasyCashFlows - email di prova",
			"Il canale email è configurato correttamente.")
	default:
		return domain.ErrInvalidInput
	}
}

// MovementCreated notifica un movimento appena registrato ai collaboratori
// attivi dell'azienda, se la configurazione lo prevede. Implementa il punto
// di aggancio chiamato dal flusso di registrazione.
func (uc *UseCase) MovementCreated(ctx context.Context, m *entity.Movement) {
	settings, err := uc.settingsRepo.GetByCompany(m.CompanyID)
	if err != nil || settings == nil || !settings.NotifyOnMovement {
		return
	}

	resources, err := uc.resourceRepo.ListByCompany(m.CompanyID, notifyRecipientsMax, 0, true)
	if err != nil {
		uc.log.Warn().Err(err).Str("company_id", m.CompanyID).Msg("risoluzione destinatari notifica fallita")
		return
	}

	var emails, phones []string
	for _, r := range resources {
		if r.Email != "" {
			emails = append(emails, r.Email)
		}
		if r.Phone != "" {
			phones = append(phones, r.Phone)
		}
	}
	if len(emails) == 0 && len(phones) == 0 {
		return
	}
	uc.NotifyMovement(ctx, m.CompanyID, m, emails, phones)
}

// NotifyMovement invia la notifica di movimento registrato agli indirizzi
// indicati. Best effort: gli errori vengono loggati, mai propagati al flusso
// di registrazione del movimento.
func (uc *UseCase) NotifyMovement(ctx context.Context, companyID string, m *entity.Movement, emails []string, phones []string) {
	settings, err := uc.settingsRepo.GetByCompany(companyID)
	if err != nil || settings == nil || !settings.NotifyOnMovement {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	verb := "Entrata"
	if m.Type == entity.MovementTypeExpense {
		verb = "Uscita"
	}
	body := fmt.Sprintf("%s registrata: %s EUR del %s. %s",
		verb, m.Amount.StringFixed(2), m.Date.Format("02/01/2006"), m.Description)

	if mailer, err := uc.mailers.ForSettings(settings); err == nil {
		for _, to := range emails {
			if err := mailer.Send(ctx, to, "EasyCashFlows - nuovo movimento", body); err != nil {
				uc.log.Warn().Err(err).Str("to", to).Msg("notifica email fallita")
			}
		}
	}
	if sender, err := uc.whatsapp.ForSettings(settings); err == nil {
		for _, raw := range phones {
			to, err := phone.Normalize(raw)
			if err != nil {
				uc.log.Warn().Err(err).Str("to", raw).Msg("numero destinatario non valido")
				continue
			}
			if err := sender.Send(ctx, to, body); err != nil {
				uc.log.Warn().Err(err).Str("to", to).Msg("notifica WhatsApp fallita")
			}
		}
	}
}

// settingsToResponse non restituisce mai token, password o API key.
func settingsToResponse(s *entity.NotificationSettings) *dto.NotificationSettingsResponse {
	return &dto.NotificationSettingsResponse{
		WhatsAppEnabled:  s.WhatsAppEnabled,
		WhatsAppProvider: s.WhatsAppProvider,
		TwilioAccountSID: maskCredential(s.TwilioAccountSID),
		TwilioFromNumber: s.TwilioFromNumber,
		LinkMobilityURL:  s.LinkMobilityURL,
		EmailEnabled:     s.EmailEnabled,
		EmailProvider:    s.EmailProvider,
		FromEmail:        s.FromEmail,
		FromName:         s.FromName,
		SMTPHost:         s.SMTPHost,
		SMTPPort:         s.SMTPPort,
		NotifyOnMovement: s.NotifyOnMovement,
		NotifyOnDeadline: s.NotifyOnDeadline,
		UpdatedAt:        s.UpdatedAt,
	}
}

// maskCredential lascia visibili solo le ultime 4 cifre.
func maskCredential(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "****"
	}
	return "****" + v[len(v)-4:]
}
