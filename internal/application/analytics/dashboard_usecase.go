// Package analytics contiene i casi d'uso di sola lettura per il dashboard
// finanziario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain/repository"
)

const dashboardTopGroups = 5 // righe nelle classifiche core/tag del dashboard

// DashboardUseCase genera il riepilogo finanziario del giorno e del mese in
// corso.
//
// Fonte dati: AnalyticsRepository (query read-only). Non tocca mai la tabella
// dei movimenti direttamente; delega tutto al repository.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase costruisce il caso d'uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary costruisce il DashboardSummaryDTO per l'azienda indicata.
//
// Cinque query in parallelo:
//  1. GetCashflowMetrics(oggi)  → TodayIncome/TodayExpense
//  2. GetCashflowMetrics(mese)  → MonthlyIncome/MonthlyExpense
//  3. GetMonthlySeries(anno)    → MonthlySeries
//  4. GetTopCores(mese, top 5)  → TopCores
//  5. GetTopTags(mese, top 5)   → TopTags
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	companyID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Intervalli di data ─────────────────────────────────────────────────────
	// Oggi: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mese in corso: giorno 1 alle 00:00 – oggi alle 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	// ── Goroutine per parallelizzare le 5 query DB ─────────────────────────────
	type metricsResult struct {
		income  decimal.Decimal
		expense decimal.Decimal
		err     error
	}
	type seriesResult struct {
		points []repository.MonthlyCashflowResult
		err    error
	}
	type groupsResult struct {
		groups []repository.GroupNetResult
		err    error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	seriesCh := make(chan seriesResult, 1)
	coresCh := make(chan groupsResult, 1)
	tagsCh := make(chan groupsResult, 1)

	go func() {
		income, expense, err := uc.analyticsRepo.GetCashflowMetrics(ctx, companyID, todayStart, todayEnd)
		todayCh <- metricsResult{income, expense, err}
	}()
	go func() {
		income, expense, err := uc.analyticsRepo.GetCashflowMetrics(ctx, companyID, monthStart, monthEnd)
		monthCh <- metricsResult{income, expense, err}
	}()
	go func() {
		points, err := uc.analyticsRepo.GetMonthlySeries(ctx, companyID, now.Year())
		seriesCh <- seriesResult{points, err}
	}()
	go func() {
		groups, err := uc.analyticsRepo.GetTopCores(ctx, companyID, monthStart, monthEnd, dashboardTopGroups)
		coresCh <- groupsResult{groups, err}
	}()
	go func() {
		groups, err := uc.analyticsRepo.GetTopTags(ctx, companyID, monthStart, monthEnd, dashboardTopGroups)
		tagsCh <- groupsResult{groups, err}
	}()

	today := <-todayCh
	month := <-monthCh
	series := <-seriesCh
	cores := <-coresCh
	tags := <-tagsCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: metriche di oggi: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: metriche del mese: %w", month.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensile: %w", series.err)
	}
	if cores.err != nil {
		return nil, fmt.Errorf("dashboard: top core: %w", cores.err)
	}
	if tags.err != nil {
		return nil, fmt.Errorf("dashboard: top etichette: %w", tags.err)
	}

	// ── Costruire il DTO ───────────────────────────────────────────────────────
	return &dto.DashboardSummaryDTO{
		TodayIncome:    today.income.Round(2),
		TodayExpense:   today.expense.Round(2),
		TodayNet:       today.income.Sub(today.expense).Round(2),
		MonthlyIncome:  month.income.Round(2),
		MonthlyExpense: month.expense.Round(2),
		MonthlyNet:     month.income.Sub(month.expense).Round(2),
		MonthlySeries:  fullYearSeries(now.Year(), series.points),
		TopCores:       groupsToDTO(cores.groups),
		TopTags:        groupsToDTO(tags.groups),
		DateLabel:      monthLabel(now),
	}, nil
}

// fullYearSeries riempie i 12 mesi dell'anno: i mesi senza movimenti
// compaiono comunque nel grafico, a zero.
func fullYearSeries(year int, points []repository.MonthlyCashflowResult) []dto.MonthlyPointDTO {
	byMonth := make(map[int]repository.MonthlyCashflowResult, len(points))
	for _, p := range points {
		byMonth[p.Month] = p
	}
	series := make([]dto.MonthlyPointDTO, 0, 12)
	for m := 1; m <= 12; m++ {
		p := byMonth[m]
		series = append(series, dto.MonthlyPointDTO{
			Year:    year,
			Month:   m,
			Income:  p.Income.Round(2),
			Expense: p.Expense.Round(2),
			Net:     p.Income.Sub(p.Expense).Round(2),
		})
	}
	return series
}

func groupsToDTO(groups []repository.GroupNetResult) []dto.GroupNetDTO {
	out := make([]dto.GroupNetDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupNetDTO{
			ID:      g.GroupID,
			Name:    g.GroupName,
			Income:  g.Income.Round(2),
			Expense: g.Expense.Round(2),
			Net:     g.Net.Round(2),
			Count:   g.Count,
		})
	}
	return out
}

// monthLabel restituisce un'etichetta leggibile del mese, es: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
		"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
