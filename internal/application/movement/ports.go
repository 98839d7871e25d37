package movement

import (
	"context"

	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// TxRunner esegue una callback dentro una transazione di database. I
// repository passati alla callback sono legati alla transazione, così la
// validazione dei riferimenti e la scrittura del movimento sono atomiche.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		refRepo repository.ReferenceRepository,
	) error) error
}

// CreatedNotifier riceve i movimenti appena registrati per l'invio delle
// notifiche configurate dall'azienda. L'invio è best effort: avviene fuori
// transazione e non influenza l'esito della registrazione.
type CreatedNotifier interface {
	MovementCreated(ctx context.Context, m *entity.Movement)
}
