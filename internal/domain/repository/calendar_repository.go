package repository

import (
	"time"

	"github.com/easycashflows/api/internal/domain/entity"
)

// CalendarIntegrationRepository porta di persistenza per i token OAuth dei provider.
type CalendarIntegrationRepository interface {
	GetByUserAndProvider(userID, provider string) (*entity.CalendarIntegration, error)
	ListByUser(userID string) ([]*entity.CalendarIntegration, error)
	Save(integration *entity.CalendarIntegration) error // upsert su (user_id, provider)
	Delete(userID, provider string) error
}

// CalendarEventRepository porta di persistenza per gli eventi locali.
type CalendarEventRepository interface {
	Create(event *entity.CalendarEvent) error
	GetByID(id string) (*entity.CalendarEvent, error)
	Update(event *entity.CalendarEvent) error
	ListBetween(userID string, from, to time.Time) ([]*entity.CalendarEvent, error)
	GetByMovement(movementID string) (*entity.CalendarEvent, error)
	Delete(id string) error
}

// CalendarLinkRepository porta di persistenza per i collegamenti locale↔remoto.
type CalendarLinkRepository interface {
	Create(link *entity.CalendarEventLink) error
	GetByRemote(provider, remoteEventID string) (*entity.CalendarEventLink, error)
	GetByLocal(provider, localEventID string) (*entity.CalendarEventLink, error)
	DeleteByLocal(localEventID string) error
}
