package movement

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	byID       map[string]*entity.Movement
	lastFilter repository.MovementFilter
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{byID: make(map[string]*entity.Movement)}
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) GetByExternalID(companyID, externalID string) (*entity.Movement, error) {
	for _, m := range r.byID {
		if m.CompanyID == companyID && m.ExternalID == externalID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) Update(m *entity.Movement) error {
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.lastFilter = filter
	var out []*entity.Movement
	for _, m := range r.byID {
		if m.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Type != nil && m.Type != *filter.Type {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) ListUpcoming(companyID string, from time.Time, limit int) ([]*entity.Movement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeRefRepo dichiara inattivi i riferimenti elencati in inactive.
type fakeRefRepo struct {
	inactive map[string]bool
	checked  []string
}

func (r *fakeRefRepo) ExistsActive(kind repository.RefKind, id string) (bool, error) {
	r.checked = append(r.checked, string(kind)+":"+id)
	return !r.inactive[id], nil
}

// fakeTxRunner esegue la funzione direttamente, senza transazione reale.
type fakeTxRunner struct {
	movRepo *fakeMovementRepo
	refRepo *fakeRefRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovementRepository, repository.ReferenceRepository) error) error {
	return fn(tx.movRepo, tx.refRepo)
}

// fakeAnalyticsRepo aggrega in memoria ciò che in produzione è una SUM in SQL.
type fakeAnalyticsRepo struct {
	movRepo *fakeMovementRepo
}

func (r *fakeAnalyticsRepo) GetCashflowMetrics(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var income, expense decimal.Decimal
	for _, m := range r.movRepo.byID {
		if m.CompanyID != companyID || m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		if m.Type == entity.MovementTypeIncome {
			income = income.Add(m.Amount)
		} else {
			expense = expense.Add(m.Amount)
		}
	}
	return income, expense, nil
}

func (r *fakeAnalyticsRepo) GetMonthlySeries(ctx context.Context, companyID string, year int) ([]repository.MonthlyCashflowResult, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetTopCores(ctx context.Context, companyID string, start, end time.Time, limit int) ([]repository.GroupNetResult, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetTopTags(ctx context.Context, companyID string, start, end time.Time, limit int) ([]repository.GroupNetResult, error) {
	return nil, nil
}

// fakeNotifier registra su un canale gli ID dei movimenti notificati.
type fakeNotifier struct {
	created chan string
}

func (n *fakeNotifier) MovementCreated(ctx context.Context, m *entity.Movement) {
	n.created <- m.ID
}

func newTestUseCase() (*UseCase, *fakeMovementRepo, *fakeRefRepo) {
	movRepo := newFakeMovementRepo()
	refRepo := &fakeRefRepo{inactive: make(map[string]bool)}
	uc := NewUseCase(
		&fakeTxRunner{movRepo: movRepo, refRepo: refRepo},
		movRepo,
		&fakeAnalyticsRepo{movRepo: movRepo},
		nil,
	)
	return uc, movRepo, refRepo
}

func newNotifyingUseCase() (*UseCase, *fakeRefRepo, *fakeNotifier) {
	movRepo := newFakeMovementRepo()
	refRepo := &fakeRefRepo{inactive: make(map[string]bool)}
	notifier := &fakeNotifier{created: make(chan string, 1)}
	uc := NewUseCase(
		&fakeTxRunner{movRepo: movRepo, refRepo: refRepo},
		movRepo,
		&fakeAnalyticsRepo{movRepo: movRepo},
		notifier,
	)
	return uc, refRepo, notifier
}

func validCreateRequest() dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		CompanyID: "company-1",
		CoreID:    "core-1",
		Type:      entity.MovementTypeIncome,
		Amount:    decimal.RequireFromString("150.00"),
		VATAmount: decimal.RequireFromString("33.00"),
		Date:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		ReasonID:  "reason-1",
		StatusID:  "status-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_MovimentoValido(t *testing.T) {
	uc, movRepo, refRepo := newTestUseCase()

	out, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "company-1", out.CompanyID)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("150.00")))

	stored, err := movRepo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.CreatedBy)

	// I quattro riferimenti obbligatori devono essere stati verificati.
	assert.Contains(t, refRepo.checked, "company:company-1")
	assert.Contains(t, refRepo.checked, "core:core-1")
	assert.Contains(t, refRepo.checked, "reason:reason-1")
	assert.Contains(t, refRepo.checked, "status:status-1")
}

func TestCreate_VerificaAncheIRiferimentiOpzionali(t *testing.T) {
	uc, _, refRepo := newTestUseCase()

	in := validCreateRequest()
	tagID := "tag-1"
	in.TagID = &tagID

	_, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	assert.Contains(t, refRepo.checked, "tag:tag-1")
}

func TestCreate_ImportoNonPositivo(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validCreateRequest()
	in.Amount = decimal.Zero

	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TipoSconosciuto(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validCreateRequest()
	in.Type = "transfer"

	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RiferimentoInattivoBloccaLaScrittura(t *testing.T) {
	uc, movRepo, refRepo := newTestUseCase()
	refRepo.inactive["core-1"] = true

	_, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrInactiveReference)
	assert.Empty(t, movRepo.byID, "nessun movimento deve essere stato scritto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PatchParziale(t *testing.T) {
	uc, _, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	newAmount := decimal.RequireFromString("200.00")
	desc := "aggiornato"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateMovementRequest{
		Amount:      &newAmount,
		Description: &desc,
	})
	require.NoError(t, err)

	assert.True(t, out.Amount.Equal(newAmount))
	assert.Equal(t, "aggiornato", out.Description)
	assert.Equal(t, created.CoreID, out.CoreID, "i campi non inclusi nella patch restano invariati")
}

func TestUpdate_StringaVuotaScollegaIlRiferimentoOpzionale(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validCreateRequest()
	tagID := "tag-1"
	in.TagID = &tagID
	created, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	require.NotNil(t, created.TagID)

	empty := ""
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateMovementRequest{TagID: &empty})
	require.NoError(t, err)
	assert.Nil(t, out.TagID, "la stringa vuota deve scollegare l'etichetta")
}

func TestUpdate_MovimentoInesistente(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Update(context.Background(), "manca", dto.UpdateMovementRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totals e Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestTotals_CalcolaEntrateUsciteESaldo(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", validCreateRequest())
	require.NoError(t, err)

	expense := validCreateRequest()
	expense.Type = entity.MovementTypeExpense
	expense.Amount = decimal.RequireFromString("40.00")
	_, err = uc.Create(ctx, "user-1", expense)
	require.NoError(t, err)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.Totals(ctx, "company-1", from, to)
	require.NoError(t, err)

	assert.True(t, out.Income.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, out.Expense.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, out.Net.Equal(decimal.RequireFromString("110.00")))
}

func TestTotals_NonDipendeDaiLimitiDiPaginazione(t *testing.T) {
	uc, movRepo, _ := newTestUseCase()

	// Molti più movimenti di quanti una singola pagina possa contenere.
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5001; i++ {
		require.NoError(t, movRepo.Create(&entity.Movement{
			ID:        fmt.Sprintf("m-%d", i),
			CompanyID: "company-1",
			CoreID:    "core-1",
			Type:      entity.MovementTypeIncome,
			Amount:    decimal.NewFromInt(1),
			Date:      date,
			ReasonID:  "reason-1",
			StatusID:  "status-1",
		}))
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.Totals(context.Background(), "company-1", from, to)
	require.NoError(t, err)
	assert.True(t, out.Income.Equal(decimal.NewFromInt(5001)),
		"attesi 5001, ottenuti %s: i totali devono aggregare tutto il periodo", out.Income)
	assert.True(t, out.Net.Equal(decimal.NewFromInt(5001)))
}

func TestTotals_IntervalloInvertito(t *testing.T) {
	uc, _, _ := newTestUseCase()
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Totals(context.Background(), "company-1", from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_NotificaIlMovimentoRegistrato(t *testing.T) {
	uc, _, notifier := newNotifyingUseCase()

	out, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	select {
	case id := <-notifier.created:
		assert.Equal(t, out.ID, id)
	case <-time.After(time.Second):
		t.Fatal("nessuna notifica dopo la registrazione del movimento")
	}
}

func TestCreate_MovimentoRespintoNonNotifica(t *testing.T) {
	uc, refRepo, notifier := newNotifyingUseCase()
	refRepo.inactive["core-1"] = true

	_, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.ErrorIs(t, err, domain.ErrInactiveReference)

	select {
	case id := <-notifier.created:
		t.Fatalf("notifica inattesa per il movimento %s", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDelete(t *testing.T) {
	uc, movRepo, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, movRepo.byID)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestList_DefaultDiPaginazione(t *testing.T) {
	uc, movRepo, _ := newTestUseCase()

	_, err := uc.List("company-1", dto.ListMovementsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 20, movRepo.lastFilter.Limit)
	assert.Equal(t, 0, movRepo.lastFilter.Offset)
}

func TestList_DataInvalida(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.List("company-1", dto.ListMovementsRequest{From: "20-08-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
