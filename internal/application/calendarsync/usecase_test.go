package calendarsync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeIntegRepo struct {
	byKey map[string]*entity.CalendarIntegration // userID+provider
}

func newFakeIntegRepo() *fakeIntegRepo {
	return &fakeIntegRepo{byKey: make(map[string]*entity.CalendarIntegration)}
}

func (r *fakeIntegRepo) GetByUserAndProvider(userID, provider string) (*entity.CalendarIntegration, error) {
	integ, ok := r.byKey[userID+"/"+provider]
	if !ok {
		return nil, nil
	}
	cp := *integ
	return &cp, nil
}

func (r *fakeIntegRepo) ListByUser(userID string) ([]*entity.CalendarIntegration, error) {
	var out []*entity.CalendarIntegration
	for _, integ := range r.byKey {
		if integ.UserID == userID {
			cp := *integ
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeIntegRepo) Save(integ *entity.CalendarIntegration) error {
	cp := *integ
	r.byKey[integ.UserID+"/"+integ.Provider] = &cp
	return nil
}

func (r *fakeIntegRepo) Delete(userID, provider string) error {
	delete(r.byKey, userID+"/"+provider)
	return nil
}

type fakeEventRepo struct {
	byID map[string]*entity.CalendarEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*entity.CalendarEvent)}
}

func (r *fakeEventRepo) Create(ev *entity.CalendarEvent) error {
	cp := *ev
	r.byID[ev.ID] = &cp
	return nil
}

func (r *fakeEventRepo) GetByID(id string) (*entity.CalendarEvent, error) {
	ev, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *ev
	return &cp, nil
}

func (r *fakeEventRepo) Update(ev *entity.CalendarEvent) error {
	cp := *ev
	r.byID[ev.ID] = &cp
	return nil
}

func (r *fakeEventRepo) ListBetween(userID string, from, to time.Time) ([]*entity.CalendarEvent, error) {
	var out []*entity.CalendarEvent
	for _, ev := range r.byID {
		if ev.UserID == userID && !ev.StartAt.Before(from) && !ev.StartAt.After(to) {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) GetByMovement(movementID string) (*entity.CalendarEvent, error) {
	for _, ev := range r.byID {
		if ev.MovementID != nil && *ev.MovementID == movementID {
			cp := *ev
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeLinkRepo struct {
	links []*entity.CalendarEventLink
}

func (r *fakeLinkRepo) Create(link *entity.CalendarEventLink) error {
	cp := *link
	r.links = append(r.links, &cp)
	return nil
}

func (r *fakeLinkRepo) GetByRemote(provider, remoteEventID string) (*entity.CalendarEventLink, error) {
	for _, l := range r.links {
		if l.Provider == provider && l.RemoteEventID == remoteEventID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) GetByLocal(provider, localEventID string) (*entity.CalendarEventLink, error) {
	for _, l := range r.links {
		if l.Provider == provider && l.LocalEventID == localEventID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) DeleteByLocal(localEventID string) error {
	kept := r.links[:0]
	for _, l := range r.links {
		if l.LocalEventID != localEventID {
			kept = append(kept, l)
		}
	}
	r.links = kept
	return nil
}

type fakeMovementRepo struct {
	upcoming []*entity.Movement
}

func (r *fakeMovementRepo) Create(*entity.Movement) error                   { return nil }
func (r *fakeMovementRepo) GetByID(string) (*entity.Movement, error)        { return nil, nil }
func (r *fakeMovementRepo) GetByExternalID(_, _ string) (*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) Update(*entity.Movement) error { return nil }
func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListUpcoming(companyID string, from time.Time, limit int) ([]*entity.Movement, error) {
	return r.upcoming, nil
}
func (r *fakeMovementRepo) Delete(string) error { return nil }

// fakeProvider simula il calendario remoto in memoria.
type fakeProvider struct {
	remote     []entity.RemoteEvent
	created    []*entity.CalendarEvent
	nextID     int
	exchangeOK bool
}

func (p *fakeProvider) AuthURL(state string) string {
	return "https://provider.example/consent?state=" + state
}

func (p *fakeProvider) Exchange(ctx context.Context, code string) (string, string, time.Time, error) {
	if !p.exchangeOK {
		return "", "", time.Time{}, fmt.Errorf("code non valido")
	}
	return "access-token", "refresh-token", time.Now().Add(time.Hour), nil
}

func (p *fakeProvider) ListEvents(ctx context.Context, integ *entity.CalendarIntegration, from, to time.Time) ([]entity.RemoteEvent, error) {
	return p.remote, nil
}

func (p *fakeProvider) CreateEvent(ctx context.Context, integ *entity.CalendarIntegration, ev *entity.CalendarEvent) (string, error) {
	p.nextID++
	p.created = append(p.created, ev)
	return fmt.Sprintf("remote-%d", p.nextID), nil
}

func (p *fakeProvider) UpdateEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string, ev *entity.CalendarEvent) error {
	return nil
}

func (p *fakeProvider) DeleteEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string) error {
	return nil
}

const stateSecret = "test-state-secret"

type testEnv struct {
	uc       *UseCase
	integs   *fakeIntegRepo
	events   *fakeEventRepo
	links    *fakeLinkRepo
	mov      *fakeMovementRepo
	provider *fakeProvider
}

func newTestEnv() *testEnv {
	env := &testEnv{
		integs:   newFakeIntegRepo(),
		events:   newFakeEventRepo(),
		links:    &fakeLinkRepo{},
		mov:      &fakeMovementRepo{},
		provider: &fakeProvider{exchangeOK: true},
	}
	env.uc = NewUseCase(
		env.integs, env.events, env.links, env.mov,
		map[string]ports.CalendarProvider{entity.CalendarProviderGoogle: env.provider},
		stateSecret,
	)
	return env
}

func (env *testEnv) connectGoogle(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, env.integs.Save(&entity.CalendarIntegration{
		ID:          "integ-1",
		UserID:      userID,
		Provider:    entity.CalendarProviderGoogle,
		AccessToken: "access",
		SyncEnabled: true,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Connect e Callback
// ──────────────────────────────────────────────────────────────────────────────

func TestConnect_RestituisceURLConState(t *testing.T) {
	env := newTestEnv()

	out, err := env.uc.Connect("user-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)
	assert.Contains(t, out.AuthURL, "state=")
	assert.Equal(t, entity.CalendarProviderGoogle, out.Provider)
}

func TestConnect_ProviderNonConfigurato(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.Connect("user-1", entity.CalendarProviderOutlook)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestCallback_SalvaIntegrazione(t *testing.T) {
	env := newTestEnv()

	state, err := signState(stateSecret, "user-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	out, err := env.uc.Callback(context.Background(), entity.CalendarProviderGoogle, state, "auth-code")
	require.NoError(t, err)
	assert.True(t, out.Connected)
	assert.True(t, out.SyncEnabled)

	integ, err := env.integs.GetByUserAndProvider("user-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)
	require.NotNil(t, integ)
	assert.Equal(t, "access-token", integ.AccessToken)
	assert.Equal(t, "refresh-token", integ.RefreshToken)
}

func TestCallback_StateDiUnAltroProvider(t *testing.T) {
	env := newTestEnv()

	// State firmato per outlook, callback invocata per google.
	state, err := signState(stateSecret, "user-1", entity.CalendarProviderOutlook)
	require.NoError(t, err)

	_, err = env.uc.Callback(context.Background(), entity.CalendarProviderGoogle, state, "auth-code")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCallback_StateManomesso(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.Callback(context.Background(), entity.CalendarProviderGoogle, "state.falso.qui", "auth-code")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventi
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEvent_CreaLocaleESpingeSulProvider(t *testing.T) {
	env := newTestEnv()
	env.connectGoogle(t, "user-1")

	start := time.Now().Add(24 * time.Hour)
	out, err := env.uc.CreateEvent(context.Background(), "user-1", dto.CreateCalendarEventRequest{
		Title:   "Scadenza F24",
		StartAt: start,
		EndAt:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.Len(t, env.provider.created, 1, "l'evento deve essere spinto sul provider")
	link, err := env.links.GetByLocal(entity.CalendarProviderGoogle, out.ID)
	require.NoError(t, err)
	assert.NotNil(t, link, "il push deve registrare il collegamento locale-remoto")
}

func TestCreateEvent_IntervalloInvalido(t *testing.T) {
	env := newTestEnv()
	start := time.Now()
	_, err := env.uc.CreateEvent(context.Background(), "user-1", dto.CreateCalendarEventRequest{
		Title:   "x",
		StartAt: start,
		EndAt:   start,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sync bidirezionale
// ──────────────────────────────────────────────────────────────────────────────

func TestSync_ImportaEventiRemotiNonCollegati(t *testing.T) {
	env := newTestEnv()
	env.connectGoogle(t, "user-1")

	start := time.Now().Add(48 * time.Hour)
	env.provider.remote = []entity.RemoteEvent{
		{RemoteID: "r-1", Title: "Riunione banca", StartAt: start, EndAt: start.Add(time.Hour), UpdatedAt: time.Now()},
	}

	out, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Pulled)
	assert.Len(t, env.events.byID, 1, "l'evento remoto deve esistere in locale")

	link, err := env.links.GetByRemote(entity.CalendarProviderGoogle, "r-1")
	require.NoError(t, err)
	assert.NotNil(t, link)
}

func TestSync_SecondaEsecuzioneNonDuplica(t *testing.T) {
	env := newTestEnv()
	env.connectGoogle(t, "user-1")

	start := time.Now().Add(48 * time.Hour)
	env.provider.remote = []entity.RemoteEvent{
		{RemoteID: "r-1", Title: "Riunione", StartAt: start, EndAt: start.Add(time.Hour), UpdatedAt: time.Now().Add(-time.Hour)},
	}

	_, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	out, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Pulled, "evento già collegato e non modificato: nessun nuovo pull")
	assert.Len(t, env.events.byID, 1, "nessun duplicato locale")
}

func TestSync_RemotoPiuRecenteSovrascriveIlLocale(t *testing.T) {
	env := newTestEnv()
	env.connectGoogle(t, "user-1")

	start := time.Now().Add(48 * time.Hour)
	env.provider.remote = []entity.RemoteEvent{
		{RemoteID: "r-1", Title: "Titolo vecchio", StartAt: start, EndAt: start.Add(time.Hour), UpdatedAt: time.Now().Add(-time.Hour)},
	}
	_, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	env.provider.remote[0].Title = "Titolo nuovo"
	env.provider.remote[0].UpdatedAt = time.Now().Add(time.Hour)

	out, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pulled)

	for _, ev := range env.events.byID {
		assert.Equal(t, "Titolo nuovo", ev.Title, "vince il timestamp più recente")
	}
}

func TestSync_SpingeLeScadenzeDeiMovimenti(t *testing.T) {
	env := newTestEnv()
	env.connectGoogle(t, "user-1")

	env.mov.upcoming = []*entity.Movement{
		{
			ID:          "m-1",
			Type:        entity.MovementTypeExpense,
			Amount:      decimal.RequireFromString("500.00"),
			Date:        time.Now().Add(72 * time.Hour),
			Description: "Affitto ufficio",
		},
	}

	out, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Pushed)
	require.Len(t, env.provider.created, 1)
	assert.Contains(t, env.provider.created[0].Title, "Pagamento: 500.00 EUR")
	assert.Contains(t, env.provider.created[0].Title, "Affitto ufficio")
}

func TestSync_SenzaIntegrazione(t *testing.T) {
	env := newTestEnv()
	_, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSync_SyncDisabilitata(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.integs.Save(&entity.CalendarIntegration{
		ID:       "integ-1",
		UserID:   "user-1",
		Provider: entity.CalendarProviderGoogle,
	}))

	_, err := env.uc.Sync(context.Background(), "user-1", "company-1", entity.CalendarProviderGoogle)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
