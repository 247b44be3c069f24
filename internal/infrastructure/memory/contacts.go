package memory

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var (
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepo)(nil)
)

// SupplierRepo proveedores.
type SupplierRepo struct{ v view }

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.suppliers[s.ID]; ok {
			return domain.ErrDuplicate
		}
		r.v.s.suppliers[s.ID] = *s
		r.v.s.touch(s.ID)
		return nil
	})
}

func (r *SupplierRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	r.v.read(func() {
		if s, ok := r.v.s.suppliers[id]; ok && s.OwnerID == ownerID {
			out = &s
		}
	})
	return out, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	return r.v.write(func() error {
		cur, ok := r.v.s.suppliers[s.ID]
		if !ok || cur.OwnerID != s.OwnerID {
			return domain.ErrNotFound
		}
		r.v.s.suppliers[s.ID] = *s
		return nil
	})
}

func (r *SupplierRepo) List(ctx context.Context, ownerID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	r.v.read(func() {
		for _, s := range r.v.s.suppliers {
			if s.OwnerID == ownerID {
				out = append(out, &s)
			}
		}
		sortNewestFirst(r.v.s, out, func(s *entity.Supplier) (string, int64) { return s.ID, s.CreatedAt.UnixNano() })
	})
	return out, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.v.write(func() error {
		s, ok := r.v.s.suppliers[id]
		if !ok || s.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(r.v.s.suppliers, id)
		return nil
	})
}

// CustomerRepo clientes.
type CustomerRepo struct{ v view }

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.customers[c.ID]; ok {
			return domain.ErrDuplicate
		}
		r.v.s.customers[c.ID] = *c
		r.v.s.touch(c.ID)
		return nil
	})
}

func (r *CustomerRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Customer, error) {
	var out *entity.Customer
	r.v.read(func() {
		if c, ok := r.v.s.customers[id]; ok && c.OwnerID == ownerID {
			out = &c
		}
	})
	return out, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	return r.v.write(func() error {
		cur, ok := r.v.s.customers[c.ID]
		if !ok || cur.OwnerID != c.OwnerID {
			return domain.ErrNotFound
		}
		r.v.s.customers[c.ID] = *c
		return nil
	})
}

// List busca en nombre, email y teléfono.
func (r *CustomerRepo) List(ctx context.Context, ownerID, search string, limit, offset int) ([]*entity.Customer, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(search))
	var out []*entity.Customer
	r.v.read(func() {
		for _, c := range r.v.s.customers {
			if c.OwnerID != ownerID {
				continue
			}
			if needle != "" && !strings.Contains(fold.String(c.Name+" "+c.Email+" "+c.Phone), needle) {
				continue
			}
			out = append(out, &c)
		}
		sortNewestFirst(r.v.s, out, func(c *entity.Customer) (string, int64) { return c.ID, c.CreatedAt.UnixNano() })
	})
	return page(out, limit, offset), nil
}

func (r *CustomerRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.v.write(func() error {
		c, ok := r.v.s.customers[id]
		if !ok || c.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(r.v.s.customers, id)
		return nil
	})
}

// ExpenseRepo gastos.
type ExpenseRepo struct{ v view }

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.expenses[e.ID]; ok {
			return domain.ErrDuplicate
		}
		r.v.s.expenses[e.ID] = *e
		r.v.s.touch(e.ID)
		return nil
	})
}

func (r *ExpenseRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Expense, error) {
	var out *entity.Expense
	r.v.read(func() {
		if e, ok := r.v.s.expenses[id]; ok && e.OwnerID == ownerID {
			out = &e
		}
	})
	return out, nil
}

func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	return r.v.write(func() error {
		cur, ok := r.v.s.expenses[e.ID]
		if !ok || cur.OwnerID != e.OwnerID {
			return domain.ErrNotFound
		}
		r.v.s.expenses[e.ID] = *e
		return nil
	})
}

func (r *ExpenseRepo) List(ctx context.Context, ownerID string, dr repository.DateRange) ([]*entity.Expense, error) {
	var out []*entity.Expense
	r.v.read(func() {
		for _, e := range r.v.s.expenses {
			if e.OwnerID == ownerID && dr.Contains(e.Date) {
				out = append(out, &e)
			}
		}
		sortNewestFirst(r.v.s, out, func(e *entity.Expense) (string, int64) { return e.ID, e.Date.UnixNano() })
	})
	return out, nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, ownerID, id string) error {
	return r.v.write(func() error {
		e, ok := r.v.s.expenses[id]
		if !ok || e.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(r.v.s.expenses, id)
		return nil
	})
}
