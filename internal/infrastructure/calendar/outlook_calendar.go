package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

var _ ports.CalendarProvider = (*OutlookCalendar)(nil)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// OutlookCalendar adapter verso Outlook Calendar via Microsoft Graph.
// OAuth2 con la libreria x/oauth2; le chiamate Graph sono REST dirette
// perché l'SDK ufficiale è sproporzionato per quattro endpoint.
type OutlookCalendar struct {
	oauth      *oauth2.Config
	httpClient *http.Client
}

// NewOutlookCalendar costruisce l'adapter. tenantID di solito è "common".
func NewOutlookCalendar(clientID, clientSecret, tenantID, redirectURL string) *OutlookCalendar {
	if tenantID == "" {
		tenantID = "common"
	}
	return &OutlookCalendar{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"offline_access", "Calendars.ReadWrite"},
			Endpoint:     microsoft.AzureADEndpoint(tenantID),
		},
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthURL costruisce l'URL di consenso.
func (o *OutlookCalendar) AuthURL(state string) string {
	return o.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange scambia il code della callback con i token.
func (o *OutlookCalendar) Exchange(ctx context.Context, code string) (string, string, time.Time, error) {
	tok, err := o.oauth.Exchange(ctx, code)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("outlook: exchange del code: %w", err)
	}
	return tok.AccessToken, tok.RefreshToken, tok.Expiry, nil
}

// token restituisce un access token valido, rinnovandolo se scaduto.
// Il rinnovo aggiorna i campi dell'integrazione in place.
func (o *OutlookCalendar) token(ctx context.Context, integ *entity.CalendarIntegration) (string, error) {
	tok := &oauth2.Token{
		AccessToken:  integ.AccessToken,
		RefreshToken: integ.RefreshToken,
		Expiry:       integ.TokenExpiry,
	}
	fresh, err := o.oauth.TokenSource(ctx, tok).Token()
	if err != nil {
		return "", fmt.Errorf("outlook: rinnovo token: %w", err)
	}
	if fresh.AccessToken != integ.AccessToken {
		integ.AccessToken = fresh.AccessToken
		integ.TokenExpiry = fresh.Expiry
		if fresh.RefreshToken != "" {
			integ.RefreshToken = fresh.RefreshToken
		}
	}
	return fresh.AccessToken, nil
}

// ── Strutture del protocollo Graph ────────────────────────────────────────────

type graphEvent struct {
	ID      string `json:"id,omitempty"`
	Subject string `json:"subject"`
	Body    *struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body,omitempty"`
	BodyPreview          string         `json:"bodyPreview,omitempty"`
	Start                graphDateTime  `json:"start"`
	End                  graphDateTime  `json:"end"`
	LastModifiedDateTime string         `json:"lastModifiedDateTime,omitempty"`
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphEventList struct {
	Value []graphEvent `json:"value"`
}

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const graphTimeLayout = "2006-01-02T15:04:05.9999999"

func toGraphDateTime(t time.Time) graphDateTime {
	return graphDateTime{DateTime: t.UTC().Format(graphTimeLayout), TimeZone: "UTC"}
}

func parseGraphTime(g graphDateTime) time.Time {
	t, err := time.Parse(graphTimeLayout, g.DateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// do esegue una chiamata Graph autenticata e decodifica la risposta in out (se non nil).
func (o *OutlookCalendar) do(ctx context.Context, accessToken, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("outlook: serializzare il body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("outlook: creare la request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("outlook: chiamata Graph fallita: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("outlook: leggere la risposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var gerr graphError
		if jsonErr := json.Unmarshal(raw, &gerr); jsonErr == nil && gerr.Error.Code != "" {
			return fmt.Errorf("outlook: Graph %s: %s", gerr.Error.Code, gerr.Error.Message)
		}
		return fmt.Errorf("outlook: Graph HTTP %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("outlook: deserializzare la risposta: %w", err)
		}
	}
	return nil
}

// eventsURL costruisce l'endpoint eventi del calendario configurato.
func (o *OutlookCalendar) eventsURL(integ *entity.CalendarIntegration) string {
	if integ.CalendarID == "" {
		return graphBaseURL + "/me/calendar/events"
	}
	return fmt.Sprintf("%s/me/calendars/%s/events", graphBaseURL, url.PathEscape(integ.CalendarID))
}

// ListEvents restituisce gli eventi remoti nella finestra temporale (calendarView
// espande anche le ricorrenze).
func (o *OutlookCalendar) ListEvents(ctx context.Context, integ *entity.CalendarIntegration, from, to time.Time) ([]entity.RemoteEvent, error) {
	accessToken, err := o.token(ctx, integ)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/me/calendarView?startDateTime=%s&endDateTime=%s&$top=250",
		graphBaseURL,
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)),
	)

	var list graphEventList
	if err := o.do(ctx, accessToken, http.MethodGet, u, nil, &list); err != nil {
		return nil, err
	}

	var events []entity.RemoteEvent
	for _, item := range list.Value {
		ev := entity.RemoteEvent{
			RemoteID:    item.ID,
			Title:       item.Subject,
			Description: item.BodyPreview,
			StartAt:     parseGraphTime(item.Start),
			EndAt:       parseGraphTime(item.End),
		}
		if t, err := time.Parse(time.RFC3339, item.LastModifiedDateTime); err == nil {
			ev.UpdatedAt = t
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent crea l'evento remoto e restituisce il suo ID.
func (o *OutlookCalendar) CreateEvent(ctx context.Context, integ *entity.CalendarIntegration, ev *entity.CalendarEvent) (string, error) {
	accessToken, err := o.token(ctx, integ)
	if err != nil {
		return "", err
	}

	var created graphEvent
	if err := o.do(ctx, accessToken, http.MethodPost, o.eventsURL(integ), toOutlookEvent(ev), &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// UpdateEvent sovrascrive l'evento remoto.
func (o *OutlookCalendar) UpdateEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string, ev *entity.CalendarEvent) error {
	accessToken, err := o.token(ctx, integ)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/me/events/%s", graphBaseURL, url.PathEscape(remoteID))
	return o.do(ctx, accessToken, http.MethodPatch, u, toOutlookEvent(ev), nil)
}

// DeleteEvent elimina l'evento remoto.
func (o *OutlookCalendar) DeleteEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string) error {
	accessToken, err := o.token(ctx, integ)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/me/events/%s", graphBaseURL, url.PathEscape(remoteID))
	return o.do(ctx, accessToken, http.MethodDelete, u, nil, nil)
}

func toOutlookEvent(ev *entity.CalendarEvent) *graphEvent {
	ge := &graphEvent{
		Subject: ev.Title,
		Start:   toGraphDateTime(ev.StartAt),
		End:     toGraphDateTime(ev.EndAt),
	}
	if ev.Description != "" {
		ge.Body = &struct {
			ContentType string `json:"contentType"`
			Content     string `json:"content"`
		}{ContentType: "text", Content: ev.Description}
	}
	return ge
}
