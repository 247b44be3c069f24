package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRow una venta dentro del reporte.
type SalesReportRow struct {
	SaleID string          `json:"sale_id"`
	Date   time.Time       `json:"date"`
	Units  int             `json:"units"`
	Total  decimal.Decimal `json:"total"`
	Cost   decimal.Decimal `json:"cost"`
	Profit decimal.Decimal `json:"profit"`
}

// SalesReportDTO respuesta de GET /api/reports/sales.
type SalesReportDTO struct {
	Period struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"period"`
	Rows        []SalesReportRow `json:"rows"`
	TotalSales  decimal.Decimal  `json:"total_sales"`
	TotalCost   decimal.Decimal  `json:"total_cost"`
	TotalProfit decimal.Decimal  `json:"total_profit"`
	Expenses    decimal.Decimal  `json:"expenses"`
	Net         decimal.Decimal  `json:"net"`
}
