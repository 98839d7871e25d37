package ports

import (
	"context"
	"time"

	"github.com/easycashflows/api/internal/domain/entity"
)

// CalendarProvider porta di uscita verso un calendario remoto (Google, Outlook).
// Tutte le operazioni ricevono l'integrazione con i token OAuth correnti; se
// l'adapter rinnova il token, aggiorna i campi dell'integrazione in place e il
// chiamante la ripersiste.
type CalendarProvider interface {
	// AuthURL costruisce l'URL di consenso OAuth con lo state firmato.
	AuthURL(state string) string
	// Exchange scambia il code della callback con i token.
	Exchange(ctx context.Context, code string) (accessToken, refreshToken string, expiry time.Time, err error)
	// ListEvents restituisce gli eventi remoti nella finestra temporale.
	ListEvents(ctx context.Context, integ *entity.CalendarIntegration, from, to time.Time) ([]entity.RemoteEvent, error)
	// CreateEvent crea l'evento remoto e restituisce il suo ID.
	CreateEvent(ctx context.Context, integ *entity.CalendarIntegration, ev *entity.CalendarEvent) (remoteID string, err error)
	// UpdateEvent sovrascrive l'evento remoto (semantica timestamp-overwrite).
	UpdateEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string, ev *entity.CalendarEvent) error
	// DeleteEvent elimina l'evento remoto.
	DeleteEvent(ctx context.Context, integ *entity.CalendarIntegration, remoteID string) error
}
