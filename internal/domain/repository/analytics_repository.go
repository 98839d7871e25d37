package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyCashflowResult entrate e uscite aggregate di un mese.
type MonthlyCashflowResult struct {
	Year    int
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GroupNetResult importo netto aggregato per gruppo (core o tag).
type GroupNetResult struct {
	GroupID   string
	GroupName string
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Net       decimal.Decimal
	Count     int64
}

// AnalyticsRepository query di sola lettura per i widget del dashboard.
type AnalyticsRepository interface {
	// GetCashflowMetrics restituisce entrate e uscite totali del periodo.
	GetCashflowMetrics(ctx context.Context, companyID string, start, end time.Time) (income, expense decimal.Decimal, err error)
	// GetMonthlySeries restituisce la serie mensile entrate/uscite dell'anno.
	GetMonthlySeries(ctx context.Context, companyID string, year int) ([]MonthlyCashflowResult, error)
	// GetTopCores restituisce le linee di business con maggior volume netto assoluto.
	GetTopCores(ctx context.Context, companyID string, start, end time.Time, limit int) ([]GroupNetResult, error)
	// GetTopTags come sopra, aggregato per etichetta.
	GetTopTags(ctx context.Context, companyID string, start, end time.Time, limit int) ([]GroupNetResult, error)
}
