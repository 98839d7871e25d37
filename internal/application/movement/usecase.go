package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// UseCase gestisce i movimenti finanziari. Le scritture passano dal TxRunner:
// la verifica dei riferimenti e l'insert/update avvengono nella stessa
// transazione.
type UseCase struct {
	tx            TxRunner
	movementRepo  repository.MovementRepository
	analyticsRepo repository.AnalyticsRepository
	notifier      CreatedNotifier
}

// NewUseCase costruisce lo use case. movementRepo serve per le letture fuori
// transazione (get, list); analyticsRepo per i totali aggregati in SQL.
// notifier può essere nil (nessuna notifica alla registrazione).
func NewUseCase(
	tx TxRunner,
	movementRepo repository.MovementRepository,
	analyticsRepo repository.AnalyticsRepository,
	notifier CreatedNotifier,
) *UseCase {
	return &UseCase{
		tx:            tx,
		movementRepo:  movementRepo,
		analyticsRepo: analyticsRepo,
		notifier:      notifier,
	}
}

// refCheck coppia tipo/id da verificare prima di scrivere.
type refCheck struct {
	kind repository.RefKind
	id   string
}

// validateRefs verifica che ogni riferimento esista e sia attivo.
func validateRefs(refRepo repository.ReferenceRepository, checks []refCheck) error {
	for _, c := range checks {
		ok, err := refRepo.ExistsActive(c.kind, c.id)
		if err != nil {
			return fmt.Errorf("verifica riferimento %s: %w", c.kind, err)
		}
		if !ok {
			return domain.ErrInactiveReference
		}
	}
	return nil
}

// collectRefs raccoglie i riferimenti di un movimento (obbligatori più gli
// opzionali valorizzati).
func collectRefs(m *entity.Movement) []refCheck {
	checks := []refCheck{
		{repository.RefCompany, m.CompanyID},
		{repository.RefCore, m.CoreID},
		{repository.RefReason, m.ReasonID},
		{repository.RefStatus, m.StatusID},
	}
	optional := []struct {
		kind repository.RefKind
		id   *string
	}{
		{repository.RefResource, m.ResourceID},
		{repository.RefOffice, m.OfficeID},
		{repository.RefIBAN, m.IBANID},
		{repository.RefTag, m.TagID},
		{repository.RefSupplier, m.SupplierID},
		{repository.RefCustomer, m.CustomerID},
	}
	for _, o := range optional {
		if o.id != nil && *o.id != "" {
			checks = append(checks, refCheck{o.kind, *o.id})
		}
	}
	return checks
}

// Create registra un movimento. L'importo deve essere positivo; il segno lo
// determina il tipo. Tutti i riferimenti vengono verificati nella stessa
// transazione dell'insert.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.VATAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIncome && in.Type != entity.MovementTypeExpense {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	m := &entity.Movement{
		ID:             uuid.New().String(),
		CompanyID:      in.CompanyID,
		CoreID:         in.CoreID,
		Type:           in.Type,
		Amount:         in.Amount,
		VATAmount:      in.VATAmount,
		Date:           in.Date,
		Description:    in.Description,
		ReasonID:       in.ReasonID,
		StatusID:       in.StatusID,
		ResourceID:     in.ResourceID,
		OfficeID:       in.OfficeID,
		IBANID:         in.IBANID,
		TagID:          in.TagID,
		SupplierID:     in.SupplierID,
		CustomerID:     in.CustomerID,
		DocumentNumber: in.DocumentNumber,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      userID,
	}

	err := uc.tx.Run(ctx, func(movRepo repository.MovementRepository, refRepo repository.ReferenceRepository) error {
		if err := validateRefs(refRepo, collectRefs(m)); err != nil {
			return err
		}
		return movRepo.Create(m)
	})
	if err != nil {
		return nil, err
	}

	// Notifica sui canali configurati, fuori dal percorso della risposta.
	if uc.notifier != nil {
		go uc.notifier.MovementCreated(context.WithoutCancel(ctx), m)
	}
	return entityToMovementResponse(m), nil
}

// GetByID recupera un movimento.
func (uc *UseCase) GetByID(id string) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return entityToMovementResponse(m), nil
}

// Update applica le modifiche presenti nella richiesta. I riferimenti
// (nuovi e invariati) vengono riverificati in transazione.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	if in.CoreID != nil {
		m.CoreID = *in.CoreID
	}
	if in.Type != nil {
		if *in.Type != entity.MovementTypeIncome && *in.Type != entity.MovementTypeExpense {
			return nil, domain.ErrInvalidInput
		}
		m.Type = *in.Type
	}
	if in.Amount != nil {
		if in.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		m.Amount = *in.Amount
	}
	if in.VATAmount != nil {
		if in.VATAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.VATAmount = *in.VATAmount
	}
	if in.Date != nil {
		m.Date = *in.Date
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.ReasonID != nil {
		m.ReasonID = *in.ReasonID
	}
	if in.StatusID != nil {
		m.StatusID = *in.StatusID
	}
	// Per i riferimenti opzionali la stringa vuota significa "scollega".
	m.ResourceID = patchOptionalRef(m.ResourceID, in.ResourceID)
	m.OfficeID = patchOptionalRef(m.OfficeID, in.OfficeID)
	m.IBANID = patchOptionalRef(m.IBANID, in.IBANID)
	m.TagID = patchOptionalRef(m.TagID, in.TagID)
	m.SupplierID = patchOptionalRef(m.SupplierID, in.SupplierID)
	m.CustomerID = patchOptionalRef(m.CustomerID, in.CustomerID)
	if in.DocumentNumber != nil {
		m.DocumentNumber = *in.DocumentNumber
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	m.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(movRepo repository.MovementRepository, refRepo repository.ReferenceRepository) error {
		if err := validateRefs(refRepo, collectRefs(m)); err != nil {
			return err
		}
		return movRepo.Update(m)
	})
	if err != nil {
		return nil, err
	}
	return entityToMovementResponse(m), nil
}

func patchOptionalRef(current, patch *string) *string {
	if patch == nil {
		return current
	}
	if *patch == "" {
		return nil
	}
	return patch
}

// List elenca i movimenti dell'azienda applicando i filtri della richiesta.
func (uc *UseCase) List(companyID string, in dto.ListMovementsRequest) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{
		CompanyID: companyID,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	assign := func(dst **string, v string) {
		if v != "" {
			*dst = &v
		}
	}
	assign(&filter.Type, in.Type)
	assign(&filter.StatusID, in.StatusID)
	assign(&filter.CoreID, in.CoreID)
	assign(&filter.TagID, in.TagID)
	assign(&filter.IBANID, in.IBANID)
	assign(&filter.SupplierID, in.SupplierID)
	assign(&filter.CustomerID, in.CustomerID)

	if in.From != "" {
		t, err := parseDate(in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if in.To != "" {
		t, err := parseDate(in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = &t
	}

	list, err := uc.movementRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *entityToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Totals calcola entrate, uscite e saldo del periodo. L'aggregazione è una
// SUM in SQL, quindi il risultato non dipende da limiti di paginazione.
func (uc *UseCase) Totals(ctx context.Context, companyID string, from, to time.Time) (*dto.MovementTotalsResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	income, expense, err := uc.analyticsRepo.GetCashflowMetrics(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.MovementTotalsResponse{
		From:    from,
		To:      to,
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}, nil
}

// Delete elimina un movimento.
func (uc *UseCase) Delete(id string) error {
	m, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.movementRepo.Delete(id)
}

// parseDate accetta sia RFC 3339 sia la forma breve "2006-01-02".
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func entityToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		CoreID:         m.CoreID,
		Type:           m.Type,
		Amount:         m.Amount,
		VATAmount:      m.VATAmount,
		Date:           m.Date,
		Description:    m.Description,
		ReasonID:       m.ReasonID,
		StatusID:       m.StatusID,
		ResourceID:     m.ResourceID,
		OfficeID:       m.OfficeID,
		IBANID:         m.IBANID,
		TagID:          m.TagID,
		SupplierID:     m.SupplierID,
		CustomerID:     m.CustomerID,
		DocumentNumber: m.DocumentNumber,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
