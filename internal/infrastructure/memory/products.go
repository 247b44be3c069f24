package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ v view }

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		r.v.s.products[p.ID] = *p
		r.v.s.touch(p.ID)
		return nil
	})
}

func (r *ProductRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	var out *entity.Product
	r.v.read(func() {
		if p, ok := r.v.s.products[id]; ok && p.OwnerID == ownerID {
			out = &p
		}
	})
	return out, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return r.v.write(func() error {
		cur, ok := r.v.s.products[p.ID]
		if !ok || cur.OwnerID != p.OwnerID {
			return domain.ErrNotFound
		}
		r.v.s.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepo) UpdateCost(ctx context.Context, ownerID, id string, cost decimal.Decimal) error {
	return r.v.write(func() error {
		p, ok := r.v.s.products[id]
		if !ok || p.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		p.Cost = cost
		r.v.s.products[p.ID] = p
		return nil
	})
}

func (r *ProductRepo) List(ctx context.Context, ownerID string, filter repository.ProductFilter) ([]*entity.Product, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(filter.Search))
	var out []*entity.Product
	r.v.read(func() {
		for _, p := range r.v.s.products {
			if p.OwnerID != ownerID {
				continue
			}
			if filter.LowStockOnly && !p.IsLowStock() {
				continue
			}
			if needle != "" && !strings.Contains(fold.String(p.Name), needle) {
				continue
			}
			out = append(out, &p)
		}
		sortNewestFirst(r.v.s, out, func(p *entity.Product) (string, int64) { return p.ID, p.CreatedAt.UnixNano() })
	})
	return page(out, filter.Limit, filter.Offset), nil
}

func (r *ProductRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.v.write(func() error {
		p, ok := r.v.s.products[id]
		if !ok || p.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(r.v.s.products, id)
		return nil
	})
}

func (r *ProductRepo) SetQuantity(ctx context.Context, ownerID, id string, quantity int) (*repository.QuantityChange, error) {
	return r.change(ownerID, id, func(int) int { return quantity })
}

func (r *ProductRepo) AdjustQuantity(ctx context.Context, ownerID, id string, delta int, floorAtZero bool) (*repository.QuantityChange, error) {
	return r.change(ownerID, id, func(q int) int {
		q += delta
		if floorAtZero && q < 0 {
			return 0
		}
		return q
	})
}

// change lee y escribe la cantidad bajo el mismo lock (equivalente al FOR UPDATE de postgres).
func (r *ProductRepo) change(ownerID, id string, next func(int) int) (*repository.QuantityChange, error) {
	var out *repository.QuantityChange
	err := r.v.write(func() error {
		p, ok := r.v.s.products[id]
		if !ok || p.OwnerID != ownerID {
			return nil
		}
		before := p.Quantity
		p.Quantity = next(before)
		// la clave se escribe con el ID guardado, no con el recibido
		r.v.s.products[p.ID] = p
		out = &repository.QuantityChange{ProductID: p.ID, Before: before, After: p.Quantity}
		return nil
	})
	return out, err
}

func (r *ProductRepo) ListLowStock(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	r.v.read(func() {
		for _, p := range r.v.s.products {
			if (ownerID == "" || p.OwnerID == ownerID) && p.IsLowStock() {
				out = append(out, &p)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity < out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// sortNewestFirst ordena por una marca de tiempo descendente; a igualdad gana la inserción más reciente.
// Llamar con mu tomado.
func sortNewestFirst[T any](s *Store, list []T, key func(T) (string, int64)) {
	sort.SliceStable(list, func(i, j int) bool {
		idI, tI := key(list[i])
		idJ, tJ := key(list[j])
		if tI != tJ {
			return tI > tJ
		}
		return s.order[idI] > s.order[idJ]
	})
}
