package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayProfit decimal.Decimal `json:"today_profit"` // ventas - costo congelado en las líneas

	// Métricas del mes en curso (día 1 – hoy)
	MonthlySales     decimal.Decimal `json:"monthly_sales"`
	MonthlyProfit    decimal.Decimal `json:"monthly_profit"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	MonthlyNet       decimal.Decimal `json:"monthly_net"` // utilidad - gastos
	MonthlySaleCount int             `json:"monthly_sale_count"`

	LowStockCount int             `json:"low_stock_count"`
	TopProducts   []TopProductDTO `json:"top_products"`

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TopProductDTO producto más vendido del mes.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
