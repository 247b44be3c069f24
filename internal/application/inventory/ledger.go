package inventory

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/ports"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

const defaultMovementsLimit = 50

// StockLedger operaciones manuales sobre la cantidad de un producto.
// Los decrementos manuales nunca dejan la cantidad bajo cero.
type StockLedger struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	notifier    ports.CatalogNotifier
}

// NewStockLedger construye el caso de uso.
func NewStockLedger(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	notifier ports.CatalogNotifier,
) *StockLedger {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &StockLedger{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo, notifier: notifier}
}

// SetQuantity sobrescribe la cantidad con un valor no negativo.
func (l *StockLedger) SetQuantity(ctx context.Context, ownerID, productID string, quantity int) (*dto.StockLevelResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var change *repository.QuantityChange
	err := l.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		var err error
		change, err = productRepo.SetQuantity(ctx, ownerID, productID, quantity)
		if err != nil {
			return err
		}
		if change == nil {
			return domain.ErrNotFound
		}
		return record(ctx, movRepo, ownerID, entity.MovementManual, "", change)
	})
	if err != nil {
		return nil, err
	}
	l.notifier.CatalogChanged(ownerID)
	return toStockLevel(change), nil
}

// Increment suma una unidad.
func (l *StockLedger) Increment(ctx context.Context, ownerID, productID string) (*dto.StockLevelResponse, error) {
	return l.Adjust(ctx, ownerID, productID, 1)
}

// Decrement resta una unidad sin bajar de cero.
func (l *StockLedger) Decrement(ctx context.Context, ownerID, productID string) (*dto.StockLevelResponse, error) {
	return l.Adjust(ctx, ownerID, productID, -1)
}

// Adjust aplica un delta manual con piso en cero.
func (l *StockLedger) Adjust(ctx context.Context, ownerID, productID string, delta int) (*dto.StockLevelResponse, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	var change *repository.QuantityChange
	err := l.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) error {
		var err error
		change, err = Apply(ctx, productRepo, movRepo, AdjustCommand{
			OwnerID:     ownerID,
			ProductID:   productID,
			Delta:       delta,
			FloorAtZero: true,
			Type:        entity.MovementManual,
		})
		if err != nil {
			return err
		}
		if change == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.notifier.CatalogChanged(ownerID)
	return toStockLevel(change), nil
}

// LowStock productos del dueño con cantidad bajo su mínimo.
func (l *StockLedger) LowStock(ctx context.Context, ownerID string) ([]dto.LowStockItem, error) {
	list, err := l.productRepo.ListLowStock(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItem, 0, len(list))
	for _, p := range list {
		out = append(out, dto.LowStockItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			MinStock:  p.MinStock,
			Missing:   p.MinStock - p.Quantity,
		})
	}
	return out, nil
}

// Movements bitácora de ajustes de un producto, más recientes primero.
func (l *StockLedger) Movements(ctx context.Context, ownerID, productID string, limit int) ([]dto.StockMovementResponse, error) {
	product, err := l.productRepo.GetByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = defaultMovementsLimit
	}
	list, err := l.movRepo.ListByProduct(ctx, ownerID, productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Type:          m.Type,
			Delta:         m.Delta,
			QuantityAfter: m.QuantityAfter,
			ReferenceID:   m.ReferenceID,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}

func toStockLevel(c *repository.QuantityChange) *dto.StockLevelResponse {
	return &dto.StockLevelResponse{ProductID: c.ProductID, Previous: c.Before, Quantity: c.After}
}
