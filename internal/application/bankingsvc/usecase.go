// Package bankingsvc integra i conti aziendali con i provider open banking:
// verifica credenziali, importazione transazioni ed export SEPA.
package bankingsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

const bankingTimeout = 30 * time.Second

// Riferimenti di default assegnati ai movimenti importati dalla banca:
// lo stato e la causale vengono cercati per nome e creati se mancanti.
const (
	importedStatusName = "Da riconciliare"
	importedReasonName = "Importazione bancaria"
)

// UseCase gestisce le operazioni open banking sui conti collegati.
type UseCase struct {
	ibanRepo     repository.IBANRepository
	companyRepo  repository.CompanyRepository
	movementRepo repository.MovementRepository
	coreRepo     repository.CoreRepository
	statusRepo   repository.StatusRepository
	reasonRepo   repository.ReasonRepository
	supplierRepo repository.SupplierRepository
	resolve      ports.BankingProviderResolver
	sepa         ports.SEPABuilder
	log          zerolog.Logger
}

// NewUseCase costruisce lo use case.
func NewUseCase(
	ibanRepo repository.IBANRepository,
	companyRepo repository.CompanyRepository,
	movementRepo repository.MovementRepository,
	coreRepo repository.CoreRepository,
	statusRepo repository.StatusRepository,
	reasonRepo repository.ReasonRepository,
	supplierRepo repository.SupplierRepository,
	resolve ports.BankingProviderResolver,
	sepa ports.SEPABuilder,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		ibanRepo:     ibanRepo,
		companyRepo:  companyRepo,
		movementRepo: movementRepo,
		coreRepo:     coreRepo,
		statusRepo:   statusRepo,
		reasonRepo:   reasonRepo,
		supplierRepo: supplierRepo,
		resolve:      resolve,
		sepa:         sepa,
		log:          log,
	}
}

// linkedAccount recupera il conto e verifica che sia collegato a un provider.
func (uc *UseCase) linkedAccount(ibanID string) (*entity.IBAN, ports.BankingProvider, error) {
	account, err := uc.ibanRepo.GetByID(ibanID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, domain.ErrNotFound
	}
	if account.BankingProvider == entity.BankingProviderNone || account.BankingAPIKey == "" {
		return nil, nil, domain.ErrNotConfigured
	}
	provider, err := uc.resolve(account.BankingProvider)
	if err != nil {
		return nil, nil, err
	}
	return account, provider, nil
}

// TestConnection verifica le credenziali del provider configurato sul conto.
func (uc *UseCase) TestConnection(ctx context.Context, ibanID string) error {
	account, provider, err := uc.linkedAccount(ibanID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, bankingTimeout)
	defer cancel()
	return provider.Test(ctx, account.BankingAPIKey, account.Value)
}

// SyncTransactions importa le transazioni del periodo come movimenti.
// Le transazioni già importate (external_id noto) vengono saltate:
// l'operazione è rieseguibile senza duplicati.
func (uc *UseCase) SyncTransactions(ctx context.Context, ibanID string, from, to time.Time) (*dto.BankingSyncResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	account, provider, err := uc.linkedAccount(ibanID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, bankingTimeout)
	defer cancel()

	transactions, err := provider.ListTransactions(ctx, account.BankingAPIKey, account.Value, from, to)
	if err != nil {
		return nil, fmt.Errorf("banking: lettura transazioni: %w", err)
	}

	coreID, err := uc.defaultCore(account.CompanyID)
	if err != nil {
		return nil, err
	}
	statusID, err := uc.importedStatus()
	if err != nil {
		return nil, err
	}
	reasonID, err := uc.importedReason()
	if err != nil {
		return nil, err
	}

	res := &dto.BankingSyncResponse{IBANID: ibanID, SyncedAt: time.Now()}
	for _, tx := range transactions {
		existing, err := uc.movementRepo.GetByExternalID(account.CompanyID, tx.ExternalID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			res.Skipped++
			continue
		}

		movementType := entity.MovementTypeIncome
		amount := tx.Amount
		if tx.Amount.IsNegative() {
			movementType = entity.MovementTypeExpense
			amount = tx.Amount.Neg()
		}

		now := time.Now()
		m := &entity.Movement{
			ID:          uuid.New().String(),
			CompanyID:   account.CompanyID,
			CoreID:      coreID,
			Type:        movementType,
			Amount:      amount,
			Date:        tx.Date,
			Description: tx.Description,
			ReasonID:    reasonID,
			StatusID:    statusID,
			IBANID:      &account.ID,
			ExternalID:  tx.ExternalID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.movementRepo.Create(m); err != nil {
			return nil, fmt.Errorf("banking: import transazione %s: %w", tx.ExternalID, err)
		}
		res.Imported++
	}

	uc.log.Info().Str("iban_id", ibanID).Int("imported", res.Imported).
		Int("skipped", res.Skipped).Msg("sincronizzazione bancaria completata")
	return res, nil
}

// defaultCore restituisce la prima linea di business attiva dell'azienda:
// i movimenti importati nascono lì e si riclassificano dopo.
func (uc *UseCase) defaultCore(companyID string) (string, error) {
	cores, err := uc.coreRepo.ListByCompany(companyID, 1, 0, true)
	if err != nil {
		return "", err
	}
	if len(cores) == 0 {
		return "", domain.ErrConflict
	}
	return cores[0].ID, nil
}

func (uc *UseCase) importedStatus() (string, error) {
	status, err := uc.statusRepo.GetByName(importedStatusName)
	if err != nil {
		return "", err
	}
	if status != nil {
		return status.ID, nil
	}
	now := time.Now()
	status = &entity.MovementStatus{
		ID:        uuid.New().String(),
		Name:      importedStatusName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.statusRepo.Create(status); err != nil {
		return "", err
	}
	return status.ID, nil
}

func (uc *UseCase) importedReason() (string, error) {
	reason, err := uc.reasonRepo.GetByName(importedReasonName)
	if err != nil {
		return "", err
	}
	if reason != nil {
		return reason.ID, nil
	}
	now := time.Now()
	reason = &entity.MovementReason{
		ID:        uuid.New().String(),
		Name:      importedReasonName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.reasonRepo.Create(reason); err != nil {
		return "", err
	}
	return reason.ID, nil
}

// ExportSEPA genera il documento pain.001.001.03 per i movimenti di spesa
// selezionati, addebitati sul conto indicato. Il beneficiario è il fornitore
// del movimento; il suo IBAN deve essere in anagrafica.
func (uc *UseCase) ExportSEPA(in dto.SEPAExportRequest) ([]byte, error) {
	account, err := uc.ibanRepo.GetByID(in.IBANID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(account.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	execution := time.Now().AddDate(0, 0, 1)
	if in.Execution != "" {
		execution, err = time.Parse("2006-01-02", in.Execution)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	payments := make([]ports.SEPAPayment, 0, len(in.MovementIDs))
	for _, id := range in.MovementIDs {
		m, err := uc.movementRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if m == nil || m.CompanyID != account.CompanyID {
			return nil, domain.ErrNotFound
		}
		if m.Type != entity.MovementTypeExpense {
			return nil, domain.ErrInvalidInput
		}
		if m.SupplierID == nil {
			return nil, fmt.Errorf("sepa: il movimento %s non ha un fornitore: %w", m.ID, domain.ErrInvalidInput)
		}
		supplier, err := uc.supplierRepo.GetByID(*m.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		if supplier.IBAN == "" {
			return nil, fmt.Errorf("sepa: il fornitore %s non ha un IBAN: %w", supplier.Name, domain.ErrInvalidInput)
		}
		payments = append(payments, ports.SEPAPayment{
			Movement:     m,
			CreditorName: supplier.Name,
			CreditorIBAN: supplier.IBAN,
		})
	}

	msgID := fmt.Sprintf("ECF-%s", time.Now().Format("20060102150405"))
	return uc.sepa.Build(msgID, company, account, payments, execution)
}
