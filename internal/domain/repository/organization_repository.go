package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// OrganizationRepository persistencia de la organización (tienda) de cada dueño.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByOwner(ctx context.Context, ownerID string) (*entity.Organization, error)
	Update(ctx context.Context, org *entity.Organization) error
	List(ctx context.Context, limit, offset int) ([]*entity.Organization, error)
}
