package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// StockMovementRepository bitácora de ajustes de stock (solo inserción y lectura).
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListByProduct(ctx context.Context, ownerID, productID string, limit int) ([]*entity.StockMovement, error)
}
