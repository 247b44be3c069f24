package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// AdjustCommand ajuste de cantidad por delta, con piso opcional en cero.
type AdjustCommand struct {
	OwnerID     string
	ProductID   string
	Delta       int
	FloorAtZero bool
	Type        string // entity.Movement*
	ReferenceID string
}

// Apply es la única primitiva de escritura de stock: delega el ajuste atómico al repositorio y
// registra el movimiento. Devuelve (nil, nil) si el producto ya no existe.
func Apply(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	cmd AdjustCommand,
) (*repository.QuantityChange, error) {
	change, err := productRepo.AdjustQuantity(ctx, cmd.OwnerID, cmd.ProductID, cmd.Delta, cmd.FloorAtZero)
	if err != nil {
		return nil, fmt.Errorf("ajustar cantidad %s: %w", cmd.ProductID, err)
	}
	if change == nil {
		return nil, nil
	}
	if err := record(ctx, movRepo, cmd.OwnerID, cmd.Type, cmd.ReferenceID, change); err != nil {
		return nil, err
	}
	return change, nil
}

func record(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	ownerID, movType, referenceID string,
	change *repository.QuantityChange,
) error {
	m := &entity.StockMovement{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		ProductID:     change.ProductID,
		Type:          movType,
		Delta:         change.Delta(),
		QuantityAfter: change.After,
		ReferenceID:   referenceID,
		CreatedAt:     time.Now(),
	}
	if err := movRepo.Create(ctx, m); err != nil {
		return fmt.Errorf("registrar movimiento: %w", err)
	}
	return nil
}
