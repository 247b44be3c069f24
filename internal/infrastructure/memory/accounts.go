package memory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var (
	_ repository.OrganizationRepository = (*OrganizationRepo)(nil)
	_ repository.UserRepository         = (*UserRepo)(nil)
)

// OrganizationRepo una organización por dueño.
type OrganizationRepo struct{ v view }

func (r *OrganizationRepo) Create(ctx context.Context, org *entity.Organization) error {
	return r.v.write(func() error {
		if _, ok := r.v.s.organizations[org.OwnerID]; ok {
			return domain.ErrDuplicate
		}
		r.v.s.organizations[org.OwnerID] = *org
		r.v.s.touch(org.ID)
		return nil
	})
}

func (r *OrganizationRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Organization, error) {
	var out *entity.Organization
	r.v.read(func() {
		if o, ok := r.v.s.organizations[ownerID]; ok {
			out = &o
		}
	})
	return out, nil
}

func (r *OrganizationRepo) Update(ctx context.Context, org *entity.Organization) error {
	return r.v.write(func() error {
		cur, ok := r.v.s.organizations[org.OwnerID]
		if !ok || cur.ID != org.ID {
			return domain.ErrNotFound
		}
		r.v.s.organizations[org.OwnerID] = *org
		return nil
	})
}

func (r *OrganizationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Organization, error) {
	var out []*entity.Organization
	r.v.read(func() {
		for _, o := range r.v.s.organizations {
			out = append(out, &o)
		}
		sortNewestFirst(r.v.s, out, func(o *entity.Organization) (string, int64) { return o.ID, o.CreatedAt.UnixNano() })
	})
	return page(out, limit, offset), nil
}

// UserRepo perfiles.
type UserRepo struct{ v view }

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return r.v.write(func() error {
		for _, other := range r.v.s.users {
			if other.ID == u.ID || strings.EqualFold(other.Email, u.Email) {
				return domain.ErrDuplicate
			}
		}
		r.v.s.users[u.ID] = *u
		r.v.s.touch(u.ID)
		return nil
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.v.read(func() {
		if u, ok := r.v.s.users[id]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User
	r.v.read(func() {
		for _, u := range r.v.s.users {
			if strings.EqualFold(u.Email, email) {
				out = &u
				return
			}
		}
	})
	return out, nil
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	r.v.read(func() {
		for _, u := range r.v.s.users {
			out = append(out, &u)
		}
		sortNewestFirst(r.v.s, out, func(u *entity.User) (string, int64) { return u.ID, u.CreatedAt.UnixNano() })
	})
	return page(out, limit, offset), nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id, role string) error {
	return r.v.write(func() error {
		u, ok := r.v.s.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.Role = role
		u.UpdatedAt = time.Now()
		r.v.s.users[u.ID] = u
		return nil
	})
}
