package notification

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSettingsRepo struct {
	settings *entity.NotificationSettings
}

func (r *fakeSettingsRepo) GetByCompany(companyID string) (*entity.NotificationSettings, error) {
	if r.settings == nil || r.settings.CompanyID != companyID {
		return nil, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Save(settings *entity.NotificationSettings) error {
	cp := *settings
	r.settings = &cp
	return nil
}

type fakeResourceRepo struct {
	resources []*entity.Resource
}

func (r *fakeResourceRepo) Create(*entity.Resource) error            { return nil }
func (r *fakeResourceRepo) GetByID(string) (*entity.Resource, error) { return nil, nil }
func (r *fakeResourceRepo) Update(*entity.Resource) error            { return nil }
func (r *fakeResourceRepo) ListByCompany(companyID string, limit, offset int, onlyActive bool) ([]*entity.Resource, error) {
	return r.resources, nil
}
func (r *fakeResourceRepo) Delete(string) error { return nil }

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// fakeMailerFactory replica il contratto reale: canale disattivato → errore.
type fakeMailerFactory struct {
	mailer *fakeMailer
}

func (f *fakeMailerFactory) ForSettings(settings *entity.NotificationSettings) (ports.Mailer, error) {
	if !settings.EmailEnabled {
		return nil, domain.ErrNotConfigured
	}
	return f.mailer, nil
}

type sentMessage struct {
	to, body string
}

type fakeWhatsApp struct {
	sent []sentMessage
}

func (w *fakeWhatsApp) Send(ctx context.Context, to, message string) error {
	w.sent = append(w.sent, sentMessage{to: to, body: message})
	return nil
}

type fakeWhatsAppFactory struct {
	sender *fakeWhatsApp
}

func (f *fakeWhatsAppFactory) ForSettings(settings *entity.NotificationSettings) (ports.WhatsAppSender, error) {
	if !settings.WhatsAppEnabled {
		return nil, domain.ErrNotConfigured
	}
	return f.sender, nil
}

type notifyEnv struct {
	uc       *UseCase
	settings *fakeSettingsRepo
	mailer   *fakeMailer
	whatsapp *fakeWhatsApp
}

func newNotifyEnv(settings *entity.NotificationSettings, resources []*entity.Resource) *notifyEnv {
	env := &notifyEnv{
		settings: &fakeSettingsRepo{settings: settings},
		mailer:   &fakeMailer{},
		whatsapp: &fakeWhatsApp{},
	}
	env.uc = NewUseCase(
		env.settings,
		&fakeResourceRepo{resources: resources},
		&fakeMailerFactory{mailer: env.mailer},
		&fakeWhatsAppFactory{sender: env.whatsapp},
		zerolog.Nop(),
	)
	return env
}

func notifySettings(flag bool) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		ID:               "ns-1",
		CompanyID:        "company-1",
		WhatsAppEnabled:  true,
		WhatsAppProvider: entity.WhatsAppProviderTwilio,
		EmailEnabled:     true,
		EmailProvider:    entity.EmailProviderSMTP,
		NotifyOnMovement: flag,
	}
}

func testMovement() *entity.Movement {
	return &entity.Movement{
		ID:          "m-1",
		CompanyID:   "company-1",
		Type:        entity.MovementTypeIncome,
		Amount:      decimal.RequireFromString("150.00"),
		Date:        time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Description: "Fattura 42",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MovementCreated
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementCreated_InviaSuiCanaliConfigurati(t *testing.T) {
	env := newNotifyEnv(notifySettings(true), []*entity.Resource{
		{ID: "r-1", CompanyID: "company-1", Email: "mario@rossi.it", Phone: "+393471234567", IsActive: true},
	})

	env.uc.MovementCreated(context.Background(), testMovement())

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "mario@rossi.it", env.mailer.sent[0].to)
	assert.Contains(t, env.mailer.sent[0].body, "Entrata registrata: 150.00 EUR")
	assert.Contains(t, env.mailer.sent[0].body, "20/08/2026")

	require.Len(t, env.whatsapp.sent, 1)
	assert.Equal(t, "+393471234567", env.whatsapp.sent[0].to)
	assert.Contains(t, env.whatsapp.sent[0].body, "Fattura 42")
}

func TestMovementCreated_FlagDisattivoNonInvia(t *testing.T) {
	env := newNotifyEnv(notifySettings(false), []*entity.Resource{
		{ID: "r-1", CompanyID: "company-1", Email: "mario@rossi.it", IsActive: true},
	})

	env.uc.MovementCreated(context.Background(), testMovement())

	assert.Empty(t, env.mailer.sent, "con il flag spento non parte nessuna email")
	assert.Empty(t, env.whatsapp.sent)
}

func TestMovementCreated_SenzaConfigurazioneNonInvia(t *testing.T) {
	env := newNotifyEnv(nil, []*entity.Resource{
		{ID: "r-1", CompanyID: "company-1", Email: "mario@rossi.it", IsActive: true},
	})

	env.uc.MovementCreated(context.Background(), testMovement())

	assert.Empty(t, env.mailer.sent)
	assert.Empty(t, env.whatsapp.sent)
}

func TestMovementCreated_SenzaDestinatariNonInvia(t *testing.T) {
	env := newNotifyEnv(notifySettings(true), nil)

	env.uc.MovementCreated(context.Background(), testMovement())

	assert.Empty(t, env.mailer.sent)
	assert.Empty(t, env.whatsapp.sent)
}

func TestMovementCreated_NumeroInvalidoNonBloccaGliAltri(t *testing.T) {
	env := newNotifyEnv(notifySettings(true), []*entity.Resource{
		{ID: "r-1", CompanyID: "company-1", Phone: "123", IsActive: true},
		{ID: "r-2", CompanyID: "company-1", Phone: "+393471234567", IsActive: true},
	})

	env.uc.MovementCreated(context.Background(), testMovement())

	require.Len(t, env.whatsapp.sent, 1, "il numero non valido viene scartato, l'altro riceve")
	assert.Equal(t, "+393471234567", env.whatsapp.sent[0].to)
}
