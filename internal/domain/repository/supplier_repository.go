package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// SupplierRepository persistencia de proveedores. List ordena por created_at descendente.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	List(ctx context.Context, ownerID string) ([]*entity.Supplier, error)
	Delete(ctx context.Context, ownerID, id string) error
}
