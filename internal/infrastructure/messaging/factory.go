package messaging

import (
	"fmt"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
)

var _ ports.WhatsAppFactory = (*WhatsAppFactory)(nil)

// WhatsAppFactory costruisce il sender WhatsApp dal provider configurato
// nelle impostazioni di notifica dell'azienda.
type WhatsAppFactory struct{}

// NewWhatsAppFactory costruisce la factory.
func NewWhatsAppFactory() *WhatsAppFactory {
	return &WhatsAppFactory{}
}

// ForSettings restituisce il sender per il provider configurato.
// domain.ErrNotConfigured se il canale è spento o le credenziali mancano.
func (f *WhatsAppFactory) ForSettings(settings *entity.NotificationSettings) (ports.WhatsAppSender, error) {
	if settings == nil || !settings.WhatsAppEnabled {
		return nil, domain.ErrNotConfigured
	}

	switch settings.WhatsAppProvider {
	case entity.WhatsAppProviderTwilio:
		if settings.TwilioAccountSID == "" || settings.TwilioAuthToken == "" || settings.TwilioFromNumber == "" {
			return nil, domain.ErrNotConfigured
		}
		return NewTwilioWhatsApp(settings.TwilioAccountSID, settings.TwilioAuthToken, settings.TwilioFromNumber), nil
	case entity.WhatsAppProviderLinkMobility:
		if settings.LinkMobilityKey == "" || settings.LinkMobilityURL == "" {
			return nil, domain.ErrNotConfigured
		}
		return NewLinkMobilityWhatsApp(settings.LinkMobilityKey, settings.LinkMobilityURL), nil
	default:
		return nil, fmt.Errorf("provider WhatsApp sconosciuto: %q", settings.WhatsAppProvider)
	}
}
