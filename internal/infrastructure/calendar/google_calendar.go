package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

var _ ports.CalendarProvider = (*GoogleCalendar)(nil)

// GoogleCalendar adapter verso Google Calendar (calendar/v3 + OAuth2).
type GoogleCalendar struct {
	oauth *oauth2.Config
}

// NewGoogleCalendar costruisce l'adapter. redirectURL è la callback pubblica
// del backend (APP_BASE_URL + /api/calendar/google/callback).
func NewGoogleCalendar(clientID, clientSecret, redirectURL string) *GoogleCalendar {
	return &GoogleCalendar{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{gcal.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL costruisce l'URL di consenso. AccessTypeOffline serve per ottenere
// il refresh token; ApprovalForce lo fa riemettere anche alle riconnessioni.
func (g *GoogleCalendar) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange scambia il code della callback con i token.
func (g *GoogleCalendar) Exchange(ctx context.Context, code string) (string, string, time.Time, error) {
	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("google: exchange del code: %w", err)
	}
	return tok.AccessToken, tok.RefreshToken, tok.Expiry, nil
}

// service costruisce il client calendar con un TokenSource che rinnova da solo
// l'access token scaduto. Se il token viene rinnovato, i nuovi valori vengono
// riscritti sull'integrazione e il chiamante la ripersiste.
func (g *GoogleCalendar) service(ctx context.Context, integ *entity.CalendarIntegration) (*gcal.Service, error) {
	tok := &oauth2.Token{
		AccessToken:  integ.AccessToken,
		RefreshToken: integ.RefreshToken,
		Expiry:       integ.TokenExpiry,
	}
	ts := g.oauth.TokenSource(ctx, tok)

	fresh, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("google: rinnovo token: %w", err)
	}
	if fresh.AccessToken != integ.AccessToken {
		integ.AccessToken = fresh.AccessToken
		integ.TokenExpiry = fresh.Expiry
		if fresh.RefreshToken != "" {
			integ.RefreshToken = fresh.RefreshToken
		}
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(fresh)))
	if err != nil {
		return nil, fmt.Errorf("google: creare il servizio calendar: %w", err)
	}
	return svc, nil
}

func (g *GoogleCalendar) calendarID(integ *entity.CalendarIntegration) string {
	if integ.CalendarID == "" {
		return "primary"
	}
	return integ.CalendarID
}

// ListEvents restituisce gli eventi remoti nella finestra temporale.
func (g *GoogleCalendar) ListEvents(ctx context.Context, integ *entity.CalendarIntegration, from, to time.Time) ([]entity.RemoteEvent, error) {
	svc, err := g.service(ctx, integ)
	if err != nil {
		return nil, err
	}

	call := svc.Events.List(g.calendarID(integ)).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(250)

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google: list events: %w", err)
	}

	var events []entity.RemoteEvent
	for _, item := range res.Items {
		if item.Status == "cancelled" {
			continue
		}
		ev := entity.RemoteEvent{
			RemoteID:    item.Id,
			Title:       item.Summary,
			Description: item.Description,
			StartAt:     parseGoogleTime(item.Start),
			EndAt:       parseGoogleTime(item.End),
		}
		if t, err := time.Parse(time.RFC3339, item.Updated); err == nil {
			ev.UpdatedAt = t
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent crea l'evento remoto e restituisce il suo ID.
func (g *GoogleCalendar) CreateEvent(ctx context.Context, integ *entity.CalendarIntegration, ev *entity.CalendarEvent) (string, error) {
	svc, err := g.service(ctx, integ)
	if err != nil {
		return "", err
	}

	created, err := svc.Events.Insert(g.calendarID(integ), toGoogleEvent(ev)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("google: create event: %w", err)
	}
	return created.Id, nil
}

// UpdateEvent sovrascrive l'evento remoto.
func (g *GoogleCalendar) UpdateEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string, ev *entity.CalendarEvent) error {
	svc, err := g.service(ctx, integ)
	if err != nil {
		return err
	}

	if _, err := svc.Events.Update(g.calendarID(integ), remoteID, toGoogleEvent(ev)).Context(ctx).Do(); err != nil {
		return fmt.Errorf("google: update event: %w", err)
	}
	return nil
}

// DeleteEvent elimina l'evento remoto.
func (g *GoogleCalendar) DeleteEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string) error {
	svc, err := g.service(ctx, integ)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(g.calendarID(integ), remoteID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("google: delete event: %w", err)
	}
	return nil
}

func toGoogleEvent(ev *entity.CalendarEvent) *gcal.Event {
	return &gcal.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{DateTime: ev.StartAt.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: ev.EndAt.Format(time.RFC3339)},
	}
}

// parseGoogleTime gestisce sia eventi con orario (DateTime) sia all-day (Date).
func parseGoogleTime(edt *gcal.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
