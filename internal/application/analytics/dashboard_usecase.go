// Package analytics contiene los casos de uso para reportes de negocio y el
// dashboard del dueño.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO del dueño.
//
// Cuatro consultas en goroutines y la de gastos en la actual:
//  1. GetSalesMetrics(hoy)
//  2. GetSalesMetrics(mes)
//  3. GetTopProducts(mes, top 5)
//  4. CountLowStock
//  5. GetExpensesTotal(mes)
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ownerID string) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type metricsResult struct {
		m   repository.SalesMetrics
		err error
	}
	type topResult struct {
		list []repository.TopProductResult
		err  error
	}
	type lowResult struct {
		count int
		err   error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan lowResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetSalesMetrics(ctx, ownerID, todayStart, todayEnd)
		todayCh <- metricsResult{m, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetSalesMetrics(ctx, ownerID, monthStart, monthEnd)
		monthCh <- metricsResult{m, err}
	}()
	go func() {
		list, err := uc.analyticsRepo.GetTopProducts(ctx, ownerID, monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{list, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx, ownerID)
		lowCh <- lowResult{n, err}
	}()
	expenses, expErr := uc.analyticsRepo.GetExpensesTotal(ctx, ownerID, monthStart, monthEnd)

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	low := <-lowCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if expErr != nil {
		return nil, fmt.Errorf("dashboard: gastos del mes: %w", expErr)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos más vendidos: %w", top.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	monthProfit := month.m.Revenue.Sub(month.m.Cost).Round(2)
	topProducts := make([]dto.TopProductDTO, 0, len(top.list))
	for _, t := range top.list {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID:    t.ProductID,
			ProductName:  t.ProductName,
			UnitsSold:    t.UnitsSold,
			TotalRevenue: t.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:       today.m.Revenue.Round(2),
		TodayProfit:      today.m.Revenue.Sub(today.m.Cost).Round(2),
		MonthlySales:     month.m.Revenue.Round(2),
		MonthlyProfit:    monthProfit,
		MonthlyExpenses:  expenses.Round(2),
		MonthlyNet:       monthProfit.Sub(expenses).Round(2),
		MonthlySaleCount: month.m.SaleCount,
		LowStockCount:    low.count,
		TopProducts:      topProducts,
		DateLabel:        monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
