package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var (
	_ repository.StockMovementRepository = (*MovementRepo)(nil)
	_ repository.SaleRepository          = (*SaleRepo)(nil)
	_ repository.PurchaseRepository      = (*PurchaseRepo)(nil)
)

// MovementRepo bitácora de movimientos.
type MovementRepo struct{ v view }

func (r *MovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	return r.v.write(func() error {
		r.v.s.movements = append(r.v.s.movements, *m)
		return nil
	})
}

// ListByProduct más recientes primero.
func (r *MovementRepo) ListByProduct(ctx context.Context, ownerID, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	r.v.read(func() {
		for i := len(r.v.s.movements) - 1; i >= 0; i-- {
			m := r.v.s.movements[i]
			if m.OwnerID == ownerID && m.ProductID == productID {
				out = append(out, &m)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, 0), nil
}

// SaleRepo ventas en memoria.
type SaleRepo struct{ v view }

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.sales[sale.ID]; ok {
			return domain.ErrDuplicate
		}
		cp := *sale
		cp.Items = slices.Clone(sale.Items)
		r.v.s.sales[sale.ID] = cp
		r.v.s.touch(sale.ID)
		return nil
	})
}

func (r *SaleRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Sale, error) {
	var out *entity.Sale
	r.v.read(func() {
		if s, ok := r.v.s.sales[id]; ok && s.OwnerID == ownerID {
			s.Items = slices.Clone(s.Items)
			out = &s
		}
	})
	return out, nil
}

func (r *SaleRepo) List(ctx context.Context, ownerID string, dr repository.DateRange, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	r.v.read(func() {
		for _, s := range r.v.s.sales {
			if s.OwnerID != ownerID || !dr.Contains(s.Date) {
				continue
			}
			s.Items = slices.Clone(s.Items)
			out = append(out, &s)
		}
		sortNewestFirst(r.v.s, out, func(s *entity.Sale) (string, int64) { return s.ID, s.Date.UnixNano() })
	})
	return page(out, limit, offset), nil
}

func (r *SaleRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.v.write(func() error {
		s, ok := r.v.s.sales[id]
		if !ok || s.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(r.v.s.sales, id)
		return nil
	})
}

// PurchaseRepo compras en memoria.
type PurchaseRepo struct{ v view }

func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.purchases[p.ID]; ok {
			return domain.ErrDuplicate
		}
		cp := *p
		cp.Items = slices.Clone(p.Items)
		r.v.s.purchases[p.ID] = cp
		r.v.s.touch(p.ID)
		return nil
	})
}

func (r *PurchaseRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Purchase, error) {
	var out *entity.Purchase
	r.v.read(func() {
		if p, ok := r.v.s.purchases[id]; ok && p.OwnerID == ownerID {
			p.Items = slices.Clone(p.Items)
			out = &p
		}
	})
	return out, nil
}

func (r *PurchaseRepo) List(ctx context.Context, ownerID string, dr repository.DateRange, limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	r.v.read(func() {
		for _, p := range r.v.s.purchases {
			if p.OwnerID != ownerID || !dr.Contains(p.Date) {
				continue
			}
			p.Items = slices.Clone(p.Items)
			out = append(out, &p)
		}
		sortNewestFirst(r.v.s, out, func(p *entity.Purchase) (string, int64) { return p.ID, p.Date.UnixNano() })
	})
	return page(out, limit, offset), nil
}

func (r *PurchaseRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.v.write(func() error {
		p, ok := r.v.s.purchases[id]
		if !ok || p.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(r.v.s.purchases, id)
		return nil
	})
}
