package movement

import (
	"context"
	"time"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// Limite di righe per gli export: oltre questa soglia il file diventa
// inutilizzabile e conviene restringere il periodo.
const exportMaxRows = 5000

// ExportUseCase genera report PDF ed export XLSX dei movimenti.
type ExportUseCase struct {
	movementRepo repository.MovementRepository
	companyRepo  repository.CompanyRepository
	report       ports.MovementReportGenerator
	excel        ports.MovementExcelExporter
}

// NewExportUseCase costruisce lo use case.
func NewExportUseCase(
	movementRepo repository.MovementRepository,
	companyRepo repository.CompanyRepository,
	report ports.MovementReportGenerator,
	excel ports.MovementExcelExporter,
) *ExportUseCase {
	return &ExportUseCase{
		movementRepo: movementRepo,
		companyRepo:  companyRepo,
		report:       report,
		excel:        excel,
	}
}

// PDF genera il report PDF dei movimenti del periodo.
func (uc *ExportUseCase) PDF(ctx context.Context, companyID string, from, to time.Time) ([]byte, error) {
	company, movements, err := uc.load(companyID, from, to)
	if err != nil {
		return nil, err
	}
	return uc.report.Generate(ctx, company, movements)
}

// Excel genera il file XLSX dei movimenti del periodo.
func (uc *ExportUseCase) Excel(ctx context.Context, companyID string, from, to time.Time) ([]byte, error) {
	company, movements, err := uc.load(companyID, from, to)
	if err != nil {
		return nil, err
	}
	return uc.excel.Export(ctx, company, movements)
}

func (uc *ExportUseCase) load(companyID string, from, to time.Time) (*entity.Company, []*entity.Movement, error) {
	if to.Before(from) {
		return nil, nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.List(repository.MovementFilter{
		CompanyID: companyID,
		From:      &from,
		To:        &to,
		Limit:     exportMaxRows,
	})
	if err != nil {
		return nil, nil, err
	}
	return company, movements, nil
}
