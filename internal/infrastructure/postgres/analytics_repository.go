package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
// Costos y cantidades salen de la foto JSONB de cada venta, no del producto actual.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics ingresos, costo congelado, número de ventas y unidades del período.
// Las ventas con líneas ilegibles (items no es un arreglo) cuentan en ingresos pero no en costo.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	ownerID string,
	startDate, endDate time.Time,
) (repository.SalesMetrics, error) {
	const query = `
	WITH period AS (
	    SELECT id, total, items
	    FROM sales
	    WHERE owner_id = $1 AND date BETWEEN $2 AND $3
	), lines AS (
	    SELECT (it->>'quantity')::int AS qty, COALESCE((it->>'unit_cost')::numeric, 0) AS unit_cost
	    FROM period, jsonb_array_elements(CASE WHEN jsonb_typeof(period.items) = 'array' THEN period.items ELSE '[]'::jsonb END) it
	)
	SELECT
	    (SELECT COALESCE(SUM(total), 0) FROM period)              AS revenue,
	    (SELECT COALESCE(SUM(qty * unit_cost), 0) FROM lines)     AS cost,
	    (SELECT COUNT(*) FROM period)                             AS sale_count,
	    (SELECT COALESCE(SUM(qty), 0) FROM lines)                 AS units_sold`

	var m repository.SalesMetrics
	err := r.q.QueryRow(ctx, query, ownerID, startDate, endDate).
		Scan(&m.Revenue, &m.Cost, &m.SaleCount, &m.UnitsSold)
	if err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return m, nil
}

// GetExpensesTotal suma de gastos del período.
func (r *AnalyticsRepo) GetExpensesTotal(ctx context.Context, ownerID string, startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE owner_id = $1 AND date BETWEEN $2 AND $3`,
		ownerID, startDate, endDate,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetExpensesTotal: %w", err)
	}
	return total, nil
}

// GetTopProducts los `limit` productos con más unidades vendidas en el período.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	ownerID string,
	startDate, endDate time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    it->>'product_id'                                              AS product_id,
	    MAX(it->>'product_name')                                       AS product_name,
	    SUM((it->>'quantity')::int)                                    AS units_sold,
	    SUM((it->>'quantity')::int * (it->>'unit_price')::numeric)     AS revenue
	FROM sales s,
	     jsonb_array_elements(CASE WHEN jsonb_typeof(s.items) = 'array' THEN s.items ELSE '[]'::jsonb END) it
	WHERE s.owner_id = $1 AND s.date BETWEEN $2 AND $3
	GROUP BY it->>'product_id'
	ORDER BY units_sold DESC, product_name ASC
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, ownerID, startDate, endDate, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountLowStock productos del dueño con quantity < min_stock.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE owner_id = $1 AND quantity < min_stock`, ownerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return n, nil
}
