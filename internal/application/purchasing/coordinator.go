// Package purchasing coordina las compras a proveedores: entrada de unidades y actualización de costo.
package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/ports"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

// Coordinator registra y elimina compras.
// El costo de cada producto queda con el último costo de compra; eliminar la compra no lo revierte.
type Coordinator struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	notifier     ports.CatalogNotifier
	log          *logger.Logger
}

// NewCoordinator construye el coordinador de compras.
func NewCoordinator(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	notifier ports.CatalogNotifier,
	log *logger.Logger,
) *Coordinator {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Coordinator{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		notifier:     notifier,
		log:          log,
	}
}

// RecordPurchase guarda la compra, suma las unidades recibidas y fija el nuevo costo de cada producto.
// Las líneas de productos inexistentes se omiten y quedan en el log y en el resultado.
func (c *Coordinator) RecordPurchase(ctx context.Context, ownerID string, in dto.CreatePurchaseRequest) (*dto.PurchaseReceiptResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 || line.NewCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.SupplierID != "" {
		supplier, err := c.supplierRepo.GetByID(ctx, ownerID, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		SupplierID: in.SupplierID,
		Date:       now,
		CreatedAt:  now,
	}
	if in.Date != nil {
		purchase.Date = *in.Date
	}

	var result inventory.Result
	err := c.txRunner.RunPurchases(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		exists := make([]bool, len(in.Items))
		items := make([]entity.PurchaseItem, 0, len(in.Items))
		total := decimal.Zero
		for i, line := range in.Items {
			product, err := productRepo.GetByID(ctx, ownerID, line.ProductID)
			if err != nil {
				return err
			}
			item := entity.PurchaseItem{ProductID: line.ProductID, Quantity: line.Quantity, NewCost: line.NewCost}
			if product != nil {
				item.ProductName = product.Name
				exists[i] = true
			}
			items = append(items, item)
			total = total.Add(line.NewCost.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		purchase.Items = items
		purchase.Total = total.Round(2)

		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return fmt.Errorf("guardar compra: %w", err)
		}

		for i, item := range items {
			if !exists[i] {
				c.skip(&result, purchase.ID, item, inventory.ReasonProductMissing)
				continue
			}
			change, err := inventory.Apply(ctx, productRepo, movRepo, inventory.AdjustCommand{
				OwnerID:     ownerID,
				ProductID:   item.ProductID,
				Delta:       item.Quantity,
				Type:        entity.MovementPurchase,
				ReferenceID: purchase.ID,
			})
			if err != nil {
				return err
			}
			if change == nil {
				c.skip(&result, purchase.ID, item, inventory.ReasonProductMissing)
				continue
			}
			if err := productRepo.UpdateCost(ctx, ownerID, item.ProductID, item.NewCost); err != nil {
				return fmt.Errorf("actualizar costo %s: %w", item.ProductID, err)
			}
			result.Applied(item.Quantity, change)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.CatalogChanged(ownerID)
	return &dto.PurchaseReceiptResponse{Purchase: *ToPurchaseResponse(purchase), Stock: result.DTO()}, nil
}

// DeletePurchase retira del stock las unidades de la compra (sin bajar de cero) y borra el registro.
func (c *Coordinator) DeletePurchase(ctx context.Context, ownerID, purchaseID string, confirmed bool) (*dto.DeletePurchaseResponse, error) {
	if !confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	var result inventory.Result
	err := c.txRunner.RunPurchases(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		purchase, err := purchaseRepo.GetByID(ctx, ownerID, purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if purchase.Items == nil {
			result.ItemsUnreadable()
		}
		for _, item := range purchase.Items {
			change, err := inventory.Apply(ctx, productRepo, movRepo, inventory.AdjustCommand{
				OwnerID:     ownerID,
				ProductID:   item.ProductID,
				Delta:       -item.Quantity,
				FloorAtZero: true,
				Type:        entity.MovementPurchaseVoid,
				ReferenceID: purchase.ID,
			})
			if err != nil {
				return err
			}
			if change == nil {
				c.skip(&result, purchase.ID, item, inventory.ReasonProductMissing)
				continue
			}
			result.Applied(item.Quantity, change)
		}
		return purchaseRepo.Delete(ctx, ownerID, purchase.ID)
	})
	if err != nil {
		return nil, err
	}

	c.notifier.CatalogChanged(ownerID)
	return &dto.DeletePurchaseResponse{PurchaseID: purchaseID, Stock: result.DTO()}, nil
}

// GetByID compra del dueño o nil si no existe.
func (c *Coordinator) GetByID(ctx context.Context, ownerID, purchaseID string) (*dto.PurchaseResponse, error) {
	p, err := c.purchaseRepo.GetByID(ctx, ownerID, purchaseID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return ToPurchaseResponse(p), nil
}

// List compras del dueño en el rango, más recientes primero.
func (c *Coordinator) List(ctx context.Context, ownerID string, r repository.DateRange, limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := c.purchaseRepo.List(ctx, ownerID, r, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (c *Coordinator) skip(result *inventory.Result, purchaseID string, item entity.PurchaseItem, reason string) {
	c.log.Warn().
		Str("purchase_id", purchaseID).
		Str("product_id", item.ProductID).
		Int("quantity", item.Quantity).
		Msg("línea de compra omitida: producto inexistente")
	result.Skipped(item.ProductID, item.Quantity, reason)
}

// ToPurchaseResponse convierte la entidad en su salida HTTP.
func ToPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			NewCost:     it.NewCost,
			Subtotal:    it.NewCost.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2),
		})
	}
	return &dto.PurchaseResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Date:       p.Date,
		Total:      p.Total,
		Items:      items,
		CreatedAt:  p.CreatedAt,
	}
}
