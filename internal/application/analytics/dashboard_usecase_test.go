package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/domain/repository"
)

// fakeAnalyticsRepo restituisce valori fissi per tutte le query.
type fakeAnalyticsRepo struct {
	income  decimal.Decimal
	expense decimal.Decimal
	series  []repository.MonthlyCashflowResult
	cores   []repository.GroupNetResult
	tags    []repository.GroupNetResult
}

func (r *fakeAnalyticsRepo) GetCashflowMetrics(ctx context.Context, companyID string, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return r.income, r.expense, nil
}

func (r *fakeAnalyticsRepo) GetMonthlySeries(ctx context.Context, companyID string, year int) ([]repository.MonthlyCashflowResult, error) {
	return r.series, nil
}

func (r *fakeAnalyticsRepo) GetTopCores(ctx context.Context, companyID string, start, end time.Time, limit int) ([]repository.GroupNetResult, error) {
	return r.cores, nil
}

func (r *fakeAnalyticsRepo) GetTopTags(ctx context.Context, companyID string, start, end time.Time, limit int) ([]repository.GroupNetResult, error) {
	return r.tags, nil
}

func TestGetSummary_ComponeIlRiepilogo(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		income:  decimal.RequireFromString("1000.555"),
		expense: decimal.RequireFromString("400.004"),
		series: []repository.MonthlyCashflowResult{
			{Month: 3, Income: decimal.RequireFromString("300"), Expense: decimal.RequireFromString("100")},
		},
		cores: []repository.GroupNetResult{
			{GroupID: "core-1", GroupName: "Impianti", Income: decimal.RequireFromString("500"), Net: decimal.RequireFromString("500"), Count: 4},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)

	// Gli importi vengono arrotondati a 2 decimali.
	assert.True(t, out.TodayIncome.Equal(decimal.RequireFromString("1000.56")), "atteso 1000.56, trovato %s", out.TodayIncome)
	assert.True(t, out.TodayNet.Equal(decimal.RequireFromString("600.55")), "il netto si arrotonda dopo la sottrazione")

	require.Len(t, out.MonthlySeries, 12, "la serie copre sempre 12 mesi")
	assert.True(t, out.MonthlySeries[2].Income.Equal(decimal.RequireFromString("300")))
	assert.True(t, out.MonthlySeries[0].Income.IsZero(), "i mesi senza dati valgono zero")

	require.Len(t, out.TopCores, 1)
	assert.Equal(t, "Impianti", out.TopCores[0].Name)
	assert.Equal(t, int64(4), out.TopCores[0].Count)
	assert.Empty(t, out.TopTags)

	assert.NotEmpty(t, out.DateLabel)
}

func TestFullYearSeries_RiempieIMesiMancanti(t *testing.T) {
	series := fullYearSeries(2026, []repository.MonthlyCashflowResult{
		{Month: 1, Income: decimal.RequireFromString("10"), Expense: decimal.RequireFromString("4")},
		{Month: 12, Income: decimal.RequireFromString("20"), Expense: decimal.RequireFromString("5")},
	})

	require.Len(t, series, 12)
	assert.Equal(t, 1, series[0].Month)
	assert.Equal(t, 12, series[11].Month)
	assert.True(t, series[0].Net.Equal(decimal.RequireFromString("6")))
	assert.True(t, series[11].Net.Equal(decimal.RequireFromString("15")))
	for m := 2; m <= 11; m++ {
		assert.True(t, series[m-1].Income.IsZero(), "mese %d senza dati", m)
		assert.Equal(t, 2026, series[m-1].Year)
	}
}

func TestMonthLabel_NomiItaliani(t *testing.T) {
	assert.Equal(t, "Agosto 2026", monthLabel(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Gennaio 2027", monthLabel(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
