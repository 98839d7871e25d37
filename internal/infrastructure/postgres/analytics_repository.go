package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo query di sola lettura per i widget del dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository costruisce l'adapter di analitica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetCashflowMetrics restituisce entrate e uscite totali del periodo.
// Usa COALESCE per restituire zero se non ci sono righe (periodo senza movimenti).
func (r *AnalyticsRepo) GetCashflowMetrics(
	ctx context.Context,
	companyID string,
	start, end time.Time,
) (income, expense decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(amount) FILTER (WHERE type = 'income'),  0) AS income,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
	FROM movements
	WHERE company_id = $1
	  AND date BETWEEN $2 AND $3`

	err = r.pool.QueryRow(ctx, query, companyID, start, end).
		Scan(&income, &expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetCashflowMetrics: %w", err)
	}
	return income, expense, nil
}

// GetMonthlySeries restituisce la serie mensile entrate/uscite di un anno.
// I mesi senza movimenti non compaiono nel risultato: li completa l'usecase.
func (r *AnalyticsRepo) GetMonthlySeries(
	ctx context.Context,
	companyID string,
	year int,
) ([]repository.MonthlyCashflowResult, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR  FROM date)::INT                             AS year,
	    EXTRACT(MONTH FROM date)::INT                             AS month,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'income'),  0)  AS income,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)  AS expense
	FROM movements
	WHERE company_id = $1
	  AND EXTRACT(YEAR FROM date) = $2
	GROUP BY 1, 2
	ORDER BY 1, 2`

	rows, err := r.pool.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlySeries: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyCashflowResult
	for rows.Next() {
		var row repository.MonthlyCashflowResult
		if err := rows.Scan(&row.Year, &row.Month, &row.Income, &row.Expense); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlySeries scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopCores restituisce le linee di business con maggior volume netto
// assoluto nel periodo, ordinate per |net| decrescente.
func (r *AnalyticsRepo) GetTopCores(
	ctx context.Context,
	companyID string,
	start, end time.Time,
	limit int,
) ([]repository.GroupNetResult, error) {
	const query = `
	SELECT
	    c.id                                                        AS core_id,
	    c.name                                                      AS core_name,
	    COALESCE(SUM(m.amount) FILTER (WHERE m.type = 'income'), 0) AS income,
	    COALESCE(SUM(m.amount) FILTER (WHERE m.type = 'expense'),0) AS expense,
	    COALESCE(SUM(CASE WHEN m.type = 'income' THEN m.amount ELSE -m.amount END), 0) AS net,
	    COUNT(m.id)                                                 AS movement_count
	FROM movements m
	JOIN cores c ON c.id = m.core_id
	WHERE m.company_id = $1
	  AND m.date BETWEEN $2 AND $3
	GROUP BY c.id, c.name
	ORDER BY ABS(SUM(CASE WHEN m.type = 'income' THEN m.amount ELSE -m.amount END)) DESC
	LIMIT $4`

	return r.queryGroups(ctx, query, companyID, start, end, limit)
}

// GetTopTags come GetTopCores, aggregato per etichetta. I movimenti senza
// etichetta restano fuori dall'aggregato.
func (r *AnalyticsRepo) GetTopTags(
	ctx context.Context,
	companyID string,
	start, end time.Time,
	limit int,
) ([]repository.GroupNetResult, error) {
	const query = `
	SELECT
	    t.id                                                        AS tag_id,
	    t.name                                                      AS tag_name,
	    COALESCE(SUM(m.amount) FILTER (WHERE m.type = 'income'), 0) AS income,
	    COALESCE(SUM(m.amount) FILTER (WHERE m.type = 'expense'),0) AS expense,
	    COALESCE(SUM(CASE WHEN m.type = 'income' THEN m.amount ELSE -m.amount END), 0) AS net,
	    COUNT(m.id)                                                 AS movement_count
	FROM movements m
	JOIN tags t ON t.id = m.tag_id
	WHERE m.company_id = $1
	  AND m.date BETWEEN $2 AND $3
	GROUP BY t.id, t.name
	ORDER BY ABS(SUM(CASE WHEN m.type = 'income' THEN m.amount ELSE -m.amount END)) DESC
	LIMIT $4`

	return r.queryGroups(ctx, query, companyID, start, end, limit)
}

func (r *AnalyticsRepo) queryGroups(
	ctx context.Context,
	query, companyID string,
	start, end time.Time,
	limit int,
) ([]repository.GroupNetResult, error) {
	rows, err := r.pool.Query(ctx, query, companyID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.queryGroups: %w", err)
	}
	defer rows.Close()

	var results []repository.GroupNetResult
	for rows.Next() {
		var row repository.GroupNetResult
		if err := rows.Scan(
			&row.GroupID,
			&row.GroupName,
			&row.Income,
			&row.Expense,
			&row.Net,
			&row.Count,
		); err != nil {
			return nil, fmt.Errorf("analytics.queryGroups scan: %w", err)
		}
		results = append(results, row)
	}
	if results == nil {
		results = []repository.GroupNetResult{}
	}
	return results, rows.Err()
}
