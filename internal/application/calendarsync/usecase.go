// Package calendarsync collega le scadenze finanziarie ai calendari esterni
// (Google Calendar, Outlook) con sincronizzazione bidirezionale.
package calendarsync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// Finestra temporale della sincronizzazione: un mese indietro, tre avanti.
const (
	syncWindowPast   = 30 * 24 * time.Hour
	syncWindowFuture = 90 * 24 * time.Hour
	pushUpcomingMax  = 100 // scadenze di movimento spinte per sync
)

// UseCase gestisce collegamento OAuth, eventi locali e sincronizzazione.
type UseCase struct {
	integRepo    repository.CalendarIntegrationRepository
	eventRepo    repository.CalendarEventRepository
	linkRepo     repository.CalendarLinkRepository
	movementRepo repository.MovementRepository
	providers    map[string]ports.CalendarProvider
	stateSecret  string
}

// NewUseCase costruisce lo use case. providers mappa il nome del provider
// (entity.CalendarProviderGoogle, ...) sull'adapter concreto.
func NewUseCase(
	integRepo repository.CalendarIntegrationRepository,
	eventRepo repository.CalendarEventRepository,
	linkRepo repository.CalendarLinkRepository,
	movementRepo repository.MovementRepository,
	providers map[string]ports.CalendarProvider,
	stateSecret string,
) *UseCase {
	return &UseCase{
		integRepo:    integRepo,
		eventRepo:    eventRepo,
		linkRepo:     linkRepo,
		movementRepo: movementRepo,
		providers:    providers,
		stateSecret:  stateSecret,
	}
}

func (uc *UseCase) provider(name string) (ports.CalendarProvider, error) {
	p, ok := uc.providers[name]
	if !ok {
		return nil, domain.ErrNotConfigured
	}
	return p, nil
}

// Connect avvia il flusso OAuth: restituisce l'URL di consenso con uno state
// firmato che lega la callback all'utente.
func (uc *UseCase) Connect(userID, providerName string) (*dto.CalendarConnectResponse, error) {
	p, err := uc.provider(providerName)
	if err != nil {
		return nil, err
	}
	state, err := signState(uc.stateSecret, userID, providerName)
	if err != nil {
		return nil, err
	}
	return &dto.CalendarConnectResponse{
		Provider: providerName,
		AuthURL:  p.AuthURL(state),
	}, nil
}

// Callback completa il flusso OAuth: verifica lo state, scambia il code con i
// token e salva l'integrazione (upsert: ripetere il collegamento sovrascrive).
func (uc *UseCase) Callback(ctx context.Context, providerName, state, code string) (*dto.CalendarIntegrationResponse, error) {
	userID, stateProvider, err := verifyState(uc.stateSecret, state)
	if err != nil || stateProvider != providerName {
		return nil, domain.ErrUnauthorized
	}
	p, err := uc.provider(providerName)
	if err != nil {
		return nil, err
	}

	access, refresh, expiry, err := p.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("calendar: scambio code OAuth: %w", err)
	}

	now := time.Now()
	integ := &entity.CalendarIntegration{
		ID:           uuid.New().String(),
		UserID:       userID,
		Provider:     providerName,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenExpiry:  expiry,
		SyncEnabled:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.integRepo.Save(integ); err != nil {
		return nil, err
	}
	return integrationToResponse(integ), nil
}

// Integrations restituisce lo stato di collegamento per ogni provider noto.
func (uc *UseCase) Integrations(userID string) ([]dto.CalendarIntegrationResponse, error) {
	list, err := uc.integRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	connected := make(map[string]*entity.CalendarIntegration, len(list))
	for _, integ := range list {
		connected[integ.Provider] = integ
	}

	out := make([]dto.CalendarIntegrationResponse, 0, 2)
	for _, name := range []string{entity.CalendarProviderGoogle, entity.CalendarProviderOutlook} {
		if integ, ok := connected[name]; ok {
			out = append(out, *integrationToResponse(integ))
			continue
		}
		out = append(out, dto.CalendarIntegrationResponse{Provider: name})
	}
	return out, nil
}

// Disconnect rimuove l'integrazione. I token vengono cancellati dal DB;
// la revoca presso il provider è a carico dell'utente.
func (uc *UseCase) Disconnect(userID, providerName string) error {
	return uc.integRepo.Delete(userID, providerName)
}

// CreateEvent crea un evento locale e lo spinge sui provider collegati con
// la sync abilitata. Un fallimento remoto non annulla la creazione locale.
func (uc *UseCase) CreateEvent(ctx context.Context, userID string, in dto.CreateCalendarEventRequest) (*dto.CalendarEventResponse, error) {
	if !in.EndAt.After(in.StartAt) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ev := &entity.CalendarEvent{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		MovementID:  in.MovementID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.eventRepo.Create(ev); err != nil {
		return nil, err
	}

	integs, err := uc.integRepo.ListByUser(userID)
	if err == nil {
		for _, integ := range integs {
			if integ.SyncEnabled {
				_ = uc.pushEvent(ctx, integ, ev)
			}
		}
	}
	return eventToResponse(ev), nil
}

// UpdateEvent aggiorna l'evento locale e sovrascrive gli omologhi remoti.
func (uc *UseCase) UpdateEvent(ctx context.Context, userID, eventID string, in dto.UpdateCalendarEventRequest) (*dto.CalendarEventResponse, error) {
	ev, err := uc.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil || ev.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if in.Title != nil {
		ev.Title = *in.Title
	}
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.StartAt != nil {
		ev.StartAt = *in.StartAt
	}
	if in.EndAt != nil {
		ev.EndAt = *in.EndAt
	}
	if !ev.EndAt.After(ev.StartAt) {
		return nil, domain.ErrInvalidInput
	}
	ev.UpdatedAt = time.Now()

	if err := uc.eventRepo.Update(ev); err != nil {
		return nil, err
	}

	integs, err := uc.integRepo.ListByUser(userID)
	if err == nil {
		for _, integ := range integs {
			link, _ := uc.linkRepo.GetByLocal(integ.Provider, ev.ID)
			if link == nil {
				continue
			}
			if p, perr := uc.provider(integ.Provider); perr == nil {
				if uerr := p.UpdateEvent(ctx, integ, link.RemoteEventID, ev); uerr == nil {
					_ = uc.integRepo.Save(integ) // token rinnovato dall'adapter
				}
			}
		}
	}
	return eventToResponse(ev), nil
}

// DeleteEvent elimina l'evento locale, i collegamenti e gli omologhi remoti.
func (uc *UseCase) DeleteEvent(ctx context.Context, userID, eventID string) error {
	ev, err := uc.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	if ev == nil || ev.UserID != userID {
		return domain.ErrNotFound
	}

	integs, err := uc.integRepo.ListByUser(userID)
	if err == nil {
		for _, integ := range integs {
			link, _ := uc.linkRepo.GetByLocal(integ.Provider, ev.ID)
			if link == nil {
				continue
			}
			if p, perr := uc.provider(integ.Provider); perr == nil {
				_ = p.DeleteEvent(ctx, integ, link.RemoteEventID)
			}
		}
	}
	if err := uc.linkRepo.DeleteByLocal(ev.ID); err != nil {
		return err
	}
	return uc.eventRepo.Delete(ev.ID)
}

// ListEvents restituisce gli eventi locali nella finestra richiesta.
func (uc *UseCase) ListEvents(userID string, from, to time.Time) (*dto.CalendarEventListResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.eventRepo.ListBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CalendarEventResponse, 0, len(list))
	for _, ev := range list {
		items = append(items, *eventToResponse(ev))
	}
	return &dto.CalendarEventListResponse{Items: items}, nil
}

// Sync esegue la sincronizzazione bidirezionale con un provider:
//
//   - pull: gli eventi remoti non ancora collegati diventano eventi locali;
//     per quelli già collegati vince il timestamp di modifica più recente.
//   - push: le scadenze di movimento future e gli eventi locali senza
//     omologo remoto vengono creati sul provider.
func (uc *UseCase) Sync(ctx context.Context, userID, companyID, providerName string) (*dto.CalendarSyncResponse, error) {
	integ, err := uc.integRepo.GetByUserAndProvider(userID, providerName)
	if err != nil {
		return nil, err
	}
	if integ == nil {
		return nil, domain.ErrNotConfigured
	}
	if !integ.SyncEnabled {
		return nil, domain.ErrConflict
	}
	p, err := uc.provider(providerName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := now.Add(-syncWindowPast)
	to := now.Add(syncWindowFuture)

	res := &dto.CalendarSyncResponse{Provider: providerName, SyncedAt: now}

	// ── Pull: remoto → locale ──────────────────────────────────────────────────
	remote, err := p.ListEvents(ctx, integ, from, to)
	if err != nil {
		return nil, fmt.Errorf("calendar: lettura eventi remoti: %w", err)
	}
	for _, rev := range remote {
		link, err := uc.linkRepo.GetByRemote(providerName, rev.RemoteID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			local, err := uc.eventRepo.GetByID(link.LocalEventID)
			if err != nil {
				return nil, err
			}
			if local == nil {
				res.Skipped++
				continue
			}
			// Già collegato: sovrascrive solo se il remoto è più recente.
			if rev.UpdatedAt.After(local.UpdatedAt) {
				local.Title = rev.Title
				local.Description = rev.Description
				local.StartAt = rev.StartAt
				local.EndAt = rev.EndAt
				local.UpdatedAt = rev.UpdatedAt
				if err := uc.eventRepo.Update(local); err != nil {
					return nil, err
				}
				res.Pulled++
			} else {
				res.Skipped++
			}
			continue
		}

		local := &entity.CalendarEvent{
			ID:          uuid.New().String(),
			UserID:      userID,
			Title:       rev.Title,
			Description: rev.Description,
			StartAt:     rev.StartAt,
			EndAt:       rev.EndAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.eventRepo.Create(local); err != nil {
			return nil, err
		}
		if err := uc.linkRepo.Create(&entity.CalendarEventLink{
			ID:            uuid.New().String(),
			LocalEventID:  local.ID,
			Provider:      providerName,
			RemoteEventID: rev.RemoteID,
			SyncedAt:      now,
		}); err != nil {
			return nil, err
		}
		res.Pulled++
	}

	// ── Push: scadenze di movimento future → locale + remoto ──────────────────
	upcoming, err := uc.movementRepo.ListUpcoming(companyID, now, pushUpcomingMax)
	if err != nil {
		return nil, err
	}
	for _, m := range upcoming {
		ev, err := uc.eventRepo.GetByMovement(m.ID)
		if err != nil {
			return nil, err
		}
		if ev == nil {
			ev = deadlineEvent(userID, m)
			if err := uc.eventRepo.Create(ev); err != nil {
				return nil, err
			}
		}
		link, err := uc.linkRepo.GetByLocal(providerName, ev.ID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			res.Skipped++
			continue
		}
		if err := uc.pushEvent(ctx, integ, ev); err != nil {
			return nil, fmt.Errorf("calendar: push scadenza: %w", err)
		}
		res.Pushed++
	}

	// ── Push: eventi locali della finestra senza omologo remoto ───────────────
	locals, err := uc.eventRepo.ListBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	for _, ev := range locals {
		link, err := uc.linkRepo.GetByLocal(providerName, ev.ID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			continue // già contato sopra o già sincronizzato
		}
		if err := uc.pushEvent(ctx, integ, ev); err != nil {
			return nil, fmt.Errorf("calendar: push evento: %w", err)
		}
		res.Pushed++
	}

	// L'adapter può aver rinnovato il token durante le chiamate.
	integ.UpdatedAt = time.Now()
	if err := uc.integRepo.Save(integ); err != nil {
		return nil, err
	}
	return res, nil
}

// pushEvent crea l'evento sul provider e registra il collegamento.
func (uc *UseCase) pushEvent(ctx context.Context, integ *entity.CalendarIntegration, ev *entity.CalendarEvent) error {
	p, err := uc.provider(integ.Provider)
	if err != nil {
		return err
	}
	remoteID, err := p.CreateEvent(ctx, integ, ev)
	if err != nil {
		return err
	}
	return uc.linkRepo.Create(&entity.CalendarEventLink{
		ID:            uuid.New().String(),
		LocalEventID:  ev.ID,
		Provider:      integ.Provider,
		RemoteEventID: remoteID,
		SyncedAt:      time.Now(),
	})
}

// deadlineEvent costruisce l'evento calendario per una scadenza di movimento.
func deadlineEvent(userID string, m *entity.Movement) *entity.CalendarEvent {
	verb := "Incasso"
	if m.Type == entity.MovementTypeExpense {
		verb = "Pagamento"
	}
	title := fmt.Sprintf("%s: %s EUR", verb, m.Amount.StringFixed(2))
	if m.Description != "" {
		title = fmt.Sprintf("%s - %s", title, m.Description)
	}
	now := time.Now()
	return &entity.CalendarEvent{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: m.Notes,
		StartAt:     m.Date,
		EndAt:       m.Date.Add(time.Hour),
		MovementID:  &m.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func integrationToResponse(integ *entity.CalendarIntegration) *dto.CalendarIntegrationResponse {
	return &dto.CalendarIntegrationResponse{
		Provider:    integ.Provider,
		Connected:   true,
		CalendarID:  integ.CalendarID,
		SyncEnabled: integ.SyncEnabled,
		TokenExpiry: integ.TokenExpiry,
	}
}

func eventToResponse(ev *entity.CalendarEvent) *dto.CalendarEventResponse {
	return &dto.CalendarEventResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartAt:     ev.StartAt,
		EndAt:       ev.EndAt,
		MovementID:  ev.MovementID,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
}
