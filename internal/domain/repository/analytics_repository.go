package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics agregados de ventas en un período.
type SalesMetrics struct {
	Revenue   decimal.Decimal
	Cost      decimal.Decimal // Σ unit_cost × quantity de las líneas congeladas
	SaleCount int
	UnitsSold int
}

// TopProductResult producto más vendido en un período.
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   int
	Revenue     decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	GetSalesMetrics(ctx context.Context, ownerID string, startDate, endDate time.Time) (SalesMetrics, error)
	GetExpensesTotal(ctx context.Context, ownerID string, startDate, endDate time.Time) (decimal.Decimal, error)
	GetTopProducts(ctx context.Context, ownerID string, startDate, endDate time.Time, limit int) ([]TopProductResult, error)
	CountLowStock(ctx context.Context, ownerID string) (int, error)
}
