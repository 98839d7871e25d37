package ports

import (
	"context"

	"github.com/easycashflows/api/internal/domain/entity"
)

// MovementReportGenerator genera il report PDF dei movimenti di un periodo.
type MovementReportGenerator interface {
	Generate(ctx context.Context, company *entity.Company, movements []*entity.Movement) ([]byte, error)
}

// MovementExcelExporter genera l'export XLSX dei movimenti.
type MovementExcelExporter interface {
	Export(ctx context.Context, company *entity.Company, movements []*entity.Movement) ([]byte, error)
}
