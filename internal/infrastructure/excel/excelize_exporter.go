package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

var _ ports.MovementExcelExporter = (*ExcelizeExporter)(nil)

const sheetName = "Movimenti"

// ExcelizeExporter genera l'export XLSX dei movimenti.
type ExcelizeExporter struct{}

// NewExcelizeExporter costruisce l'exporter.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// Export genera il file e restituisce i suoi byte. Gli importi sono numerici
// (float) così i totali si ricalcolano in Excel; le uscite hanno segno meno.
func (e *ExcelizeExporter) Export(
	ctx context.Context,
	company *entity.Company,
	movements []*entity.Movement,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: creare il foglio: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: rimuovere il foglio di default: %w", err)
	}

	// Intestazione azienda
	if err := f.SetCellValue(sheetName, "A1", company.Name); err != nil {
		return nil, fmt.Errorf("excel: scrivere l'intestazione: %w", err)
	}
	_ = f.SetCellValue(sheetName, "A2", "P.IVA: "+company.VATNumber)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E8E3"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: creare lo stile header: %w", err)
	}

	headers := []string{"Data", "Tipo", "Descrizione", "Importo", "IVA", "Documento", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: scrivere l'header %q: %w", h, err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A4", "G4", headerStyle); err != nil {
		return nil, fmt.Errorf("excel: applicare lo stile header: %w", err)
	}

	for i, mv := range movements {
		rowIdx := i + 5

		tipo := "Entrata"
		amount, _ := mv.SignedAmount().Float64()
		if mv.Type == entity.MovementTypeExpense {
			tipo = "Uscita"
		}
		vat, _ := mv.VATAmount.Float64()

		values := []any{
			mv.Date.Format("02/01/2006"),
			tipo,
			mv.Description,
			amount,
			vat,
			mv.DocumentNumber,
			mv.Notes,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: scrivere la riga %d: %w", rowIdx, err)
			}
		}
	}

	// Riga del totale con formula, sotto l'ultima riga dati.
	if len(movements) > 0 {
		totalRow := len(movements) + 6
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), "Saldo netto")
		formula := fmt.Sprintf("SUM(D5:D%d)", len(movements)+4)
		if err := f.SetCellFormula(sheetName, fmt.Sprintf("D%d", totalRow), formula); err != nil {
			return nil, fmt.Errorf("excel: scrivere la formula del totale: %w", err)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "C", "C", 40)
	_ = f.SetColWidth(sheetName, "F", "G", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializzare il file: %w", err)
	}
	return buf.Bytes(), nil
}
