package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// PurchaseRepository persistencia de compras a proveedores.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Purchase, error)
	// List ordena por fecha descendente; limit <= 0 = sin límite.
	List(ctx context.Context, ownerID string, r DateRange, limit, offset int) ([]*entity.Purchase, error)
	Delete(ctx context.Context, ownerID, id string) error
}
