package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	List(ctx context.Context, ownerID, search string, limit, offset int) ([]*entity.Customer, error)
	Delete(ctx context.Context, ownerID, id string) error
}
