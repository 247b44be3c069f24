package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregados calculados sobre el estado en memoria.
type AnalyticsRepo struct{ v view }

func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, ownerID string, startDate, endDate time.Time) (repository.SalesMetrics, error) {
	m := repository.SalesMetrics{Revenue: decimal.Zero, Cost: decimal.Zero}
	dr := repository.DateRange{From: startDate, To: endDate}
	r.v.read(func() {
		for _, s := range r.v.s.sales {
			if s.OwnerID != ownerID || !dr.Contains(s.Date) {
				continue
			}
			m.SaleCount++
			m.Revenue = m.Revenue.Add(s.Total)
			m.Cost = m.Cost.Add(s.Cost())
			for _, it := range s.Items {
				m.UnitsSold += it.Quantity
			}
		}
	})
	return m, nil
}

func (r *AnalyticsRepo) GetExpensesTotal(ctx context.Context, ownerID string, startDate, endDate time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	dr := repository.DateRange{From: startDate, To: endDate}
	r.v.read(func() {
		for _, e := range r.v.s.expenses {
			if e.OwnerID == ownerID && dr.Contains(e.Date) {
				total = total.Add(e.Amount)
			}
		}
	})
	return total, nil
}

// GetTopProducts agrupa por producto las líneas congeladas de las ventas del período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, ownerID string, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	byProduct := map[string]*repository.TopProductResult{}
	dr := repository.DateRange{From: startDate, To: endDate}
	r.v.read(func() {
		for _, s := range r.v.s.sales {
			if s.OwnerID != ownerID || !dr.Contains(s.Date) {
				continue
			}
			for _, it := range s.Items {
				t, ok := byProduct[it.ProductID]
				if !ok {
					t = &repository.TopProductResult{ProductID: it.ProductID, ProductName: it.ProductName, Revenue: decimal.Zero}
					byProduct[it.ProductID] = t
				}
				t.UnitsSold += it.Quantity
				t.Revenue = t.Revenue.Add(it.Subtotal())
			}
		}
	})
	out := make([]repository.TopProductResult, 0, len(byProduct))
	for _, t := range byProduct {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitsSold != out[j].UnitsSold {
			return out[i].UnitsSold > out[j].UnitsSold
		}
		return out[i].ProductName < out[j].ProductName
	})
	return page(out, limit, 0), nil
}

func (r *AnalyticsRepo) CountLowStock(ctx context.Context, ownerID string) (int, error) {
	n := 0
	r.v.read(func() {
		for _, p := range r.v.s.products {
			if p.OwnerID == ownerID && p.IsLowStock() {
				n++
			}
		}
	})
	return n, nil
}
