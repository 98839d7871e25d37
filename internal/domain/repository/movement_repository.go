package repository

import (
	"time"

	"github.com/easycashflows/api/internal/domain/entity"
)

// MovementFilter filtri applicabili alla lista dei movimenti.
// I puntatori nil significano "nessun filtro su questo campo".
type MovementFilter struct {
	CompanyID  string
	Type       *string // income | expense
	StatusID   *string
	CoreID     *string
	TagID      *string
	IBANID     *string
	SupplierID *string
	CustomerID *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// MovementRepository porta di persistenza per i movimenti finanziari.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// GetByExternalID cerca un movimento importato da un provider bancario.
	GetByExternalID(companyID, externalID string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	List(filter MovementFilter) ([]*entity.Movement, error)
	// ListUpcoming restituisce i movimenti con data futura (scadenze da
	// spingere sul calendario), ordinati per data.
	ListUpcoming(companyID string, from time.Time, limit int) ([]*entity.Movement, error)
	Delete(id string) error
}

// Tipi di riferimento verificabili prima di scrivere un movimento.
type RefKind string

const (
	RefCompany  RefKind = "company"
	RefCore     RefKind = "core"
	RefReason   RefKind = "reason"
	RefStatus   RefKind = "status"
	RefResource RefKind = "resource"
	RefOffice   RefKind = "office"
	RefIBAN     RefKind = "iban"
	RefTag      RefKind = "tag"
	RefSupplier RefKind = "supplier"
	RefCustomer RefKind = "customer"
)

// ReferenceRepository verifica esistenza e stato attivo dei record referenziati
// da un movimento. Usato dentro la transazione di scrittura.
type ReferenceRepository interface {
	ExistsActive(kind RefKind, id string) (bool, error)
}
