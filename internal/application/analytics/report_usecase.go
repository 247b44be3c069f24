package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase reporte de ventas por rango y exportaciones.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	analytics   repository.AnalyticsRepository
	salesExp    SalesExporter
	invExp      InventoryExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	analytics repository.AnalyticsRepository,
	salesExp SalesExporter,
	invExp InventoryExporter,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		analytics:   analytics,
		salesExp:    salesExp,
		invExp:      invExp,
	}
}

// SalesReport ventas del rango con la utilidad de cada una, totales y gastos del período.
func (uc *ReportUseCase) SalesReport(ctx context.Context, ownerID string, start, end time.Time) (*dto.SalesReportDTO, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.List(ctx, ownerID, repository.DateRange{From: start, To: end}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas: %w", err)
	}
	expenses, err := uc.analytics.GetExpensesTotal(ctx, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte: gastos: %w", err)
	}

	out := &dto.SalesReportDTO{
		Rows:        make([]dto.SalesReportRow, 0, len(sales)),
		TotalSales:  decimal.Zero,
		TotalCost:   decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	out.Period.Start = start.Format(dateLayout)
	out.Period.End = end.Format(dateLayout)

	for _, s := range sales {
		units := 0
		for _, it := range s.Items {
			units += it.Quantity
		}
		cost := s.Cost()
		out.Rows = append(out.Rows, dto.SalesReportRow{
			SaleID: s.ID,
			Date:   s.Date,
			Units:  units,
			Total:  s.Total.Round(2),
			Cost:   cost.Round(2),
			Profit: s.Total.Sub(cost).Round(2),
		})
		out.TotalSales = out.TotalSales.Add(s.Total)
		out.TotalCost = out.TotalCost.Add(cost)
	}
	out.TotalSales = out.TotalSales.Round(2)
	out.TotalCost = out.TotalCost.Round(2)
	out.TotalProfit = out.TotalSales.Sub(out.TotalCost)
	out.Expenses = expenses.Round(2)
	out.Net = out.TotalProfit.Sub(out.Expenses)
	return out, nil
}

// ExportSalesCSV reporte de ventas del rango en CSV.
func (uc *ReportUseCase) ExportSalesCSV(ctx context.Context, ownerID string, start, end time.Time) ([]byte, string, error) {
	report, err := uc.SalesReport(ctx, ownerID, start, end)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.salesExp.ExportSales(report.Rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar ventas: %w", err)
	}
	return data, fmt.Sprintf("ventas_%s_%s.csv", report.Period.Start, report.Period.End), nil
}

// ExportInventoryXLSX planilla con todos los productos del dueño.
func (uc *ReportUseCase) ExportInventoryXLSX(ctx context.Context, ownerID string) ([]byte, string, error) {
	products, err := uc.productRepo.List(ctx, ownerID, repository.ProductFilter{})
	if err != nil {
		return nil, "", err
	}
	data, err := uc.invExp.ExportInventory(products)
	if err != nil {
		return nil, "", fmt.Errorf("exportar inventario: %w", err)
	}
	return data, "inventario_" + time.Now().Format(dateLayout) + ".xlsx", nil
}
