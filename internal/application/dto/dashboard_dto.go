package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO risposta di GET /api/dashboard/summary.
// Contiene i KPI del giorno e del mese corrente, la serie mensile dell'anno
// e le classifiche per linea di business ed etichetta.
type DashboardSummaryDTO struct {
	// Metriche del giorno corrente (00:00 – 23:59)
	TodayIncome  decimal.Decimal `json:"today_income"`
	TodayExpense decimal.Decimal `json:"today_expense"`
	TodayNet     decimal.Decimal `json:"today_net"`

	// Metriche del mese corrente (giorno 1 – oggi)
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
	MonthlyNet     decimal.Decimal `json:"monthly_net"`

	// Serie mensile dell'anno in corso per il grafico a barre
	MonthlySeries []MonthlyPointDTO `json:"monthly_series"`

	// Classifiche del mese
	TopCores []GroupNetDTO `json:"top_cores"`
	TopTags  []GroupNetDTO `json:"top_tags"`

	// Metadati del periodo
	DateLabel string `json:"date_label"` // es: "Agosto 2026"
}

// MonthlyPointDTO punto della serie mensile.
type MonthlyPointDTO struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// GroupNetDTO riga di classifica per core o tag.
type GroupNetDTO struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Count   int64           `json:"count"`
}
