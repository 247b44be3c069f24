// Package sales coordina el registro y la anulación de ventas con sus efectos sobre el stock.
package sales

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

const deletedProductName = "(producto eliminado)"

// Coordinator registra ventas y las anula. Las bajas por venta no tienen piso: vender más de lo
// que hay deja la cantidad negativa, y anular la venta la devuelve exactamente.
type Coordinator struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	orgRepo  repository.OrganizationRepository
	receipts ReceiptGenerator
	notifier ports.CatalogNotifier
	log      *logger.Logger
}

// NewCoordinator construye el coordinador de ventas.
func NewCoordinator(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	orgRepo repository.OrganizationRepository,
	receipts ReceiptGenerator,
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
		txRunner: txRunner,
		saleRepo: saleRepo,
		orgRepo:  orgRepo,
		receipts: receipts,
		notifier: notifier,
		log:      log,
	}
}

// RecordSale guarda la venta con la foto de cada línea y descuenta el stock de los productos que
// aún existen. Todo ocurre en una transacción; el resultado indica qué líneas movieron stock.
func (c *Coordinator) RecordSale(ctx context.Context, ownerID string, in dto.CreateSaleRequest) (*dto.SaleReceiptResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if line.UnitPrice != nil && line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		CustomerID: in.CustomerID,
		Date:       now,
		CreatedAt:  now,
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}

	var result inventory.Result
	err := c.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		exists := make([]bool, len(in.Items))
		items := make([]entity.SaleItem, 0, len(in.Items))
		total := decimal.Zero
		for i, line := range in.Items {
			product, err := productRepo.GetByID(ctx, ownerID, line.ProductID)
			if err != nil {
				return err
			}
			item := snapshot(line, product)
			exists[i] = product != nil
			items = append(items, item)
			total = total.Add(item.Subtotal())
		}
		sale.Items = items
		sale.Total = total.Round(2)

		if err := saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("guardar venta: %w", err)
		}

		for i, item := range items {
			if !exists[i] {
				result.Skipped(item.ProductID, item.Quantity, inventory.ReasonProductMissing)
				continue
			}
			change, err := inventory.Apply(ctx, productRepo, movRepo, inventory.AdjustCommand{
				OwnerID:     ownerID,
				ProductID:   item.ProductID,
				Delta:       -item.Quantity,
				FloorAtZero: false,
				Type:        entity.MovementSale,
				ReferenceID: sale.ID,
			})
			if err != nil {
				return err
			}
			if change == nil {
				result.Skipped(item.ProductID, item.Quantity, inventory.ReasonProductMissing)
				continue
			}
			result.Applied(item.Quantity, change)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.CatalogChanged(ownerID)
	stock := result.DTO()
	if stock.Status == dto.StockStatusPartial {
		c.log.Warn().Str("sale_id", sale.ID).Str("owner_id", ownerID).Msg("venta registrada con líneas sin producto")
	}
	return &dto.SaleReceiptResponse{Sale: *ToSaleResponse(sale), Stock: stock}, nil
}

// VoidSale anula una venta: devuelve al stock cada línea cuyo producto existe y borra el registro.
// Si las líneas guardadas no se pueden leer, se borra la venta sin tocar el stock.
func (c *Coordinator) VoidSale(ctx context.Context, ownerID, saleID string, confirmed bool) (*dto.VoidSaleResponse, error) {
	if !confirmed {
		return nil, domain.ErrConfirmationRequired
	}

	var result inventory.Result
	err := c.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(ctx, ownerID, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		if sale.Items == nil {
			result.ItemsUnreadable()
		}
		for _, item := range sale.Items {
			change, err := inventory.Apply(ctx, productRepo, movRepo, inventory.AdjustCommand{
				OwnerID:     ownerID,
				ProductID:   item.ProductID,
				Delta:       item.Quantity,
				Type:        entity.MovementSaleVoid,
				ReferenceID: sale.ID,
			})
			if err != nil {
				return err
			}
			if change == nil {
				result.Skipped(item.ProductID, item.Quantity, inventory.ReasonProductMissing)
				continue
			}
			result.Applied(item.Quantity, change)
		}

		return saleRepo.Delete(ctx, ownerID, sale.ID)
	})
	if err != nil {
		return nil, err
	}

	c.notifier.CatalogChanged(ownerID)
	return &dto.VoidSaleResponse{SaleID: saleID, Stock: result.DTO()}, nil
}

// GetByID venta del dueño o nil si no existe.
func (c *Coordinator) GetByID(ctx context.Context, ownerID, saleID string) (*dto.SaleResponse, error) {
	sale, err := c.saleRepo.GetByID(ctx, ownerID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// List ventas del dueño en el rango, más recientes primero.
func (c *Coordinator) List(ctx context.Context, ownerID string, r repository.DateRange, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := c.saleRepo.List(ctx, ownerID, r, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Receipt genera el comprobante PDF de una venta.
func (c *Coordinator) Receipt(ctx context.Context, ownerID, saleID string) ([]byte, string, error) {
	if c.receipts == nil {
		return nil, "", fmt.Errorf("comprobante: generador no configurado")
	}
	sale, err := c.saleRepo.GetByID(ctx, ownerID, saleID)
	if err != nil {
		return nil, "", err
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	org, err := c.orgRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	if org == nil {
		org = &entity.Organization{OwnerID: ownerID, Name: entity.DefaultOrganizationName, Color: entity.DefaultOrganizationColor}
	}
	pdf, err := c.receipts.GenerateSaleReceipt(ctx, sale, org)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdf, "venta-" + shortID(sale.ID) + ".pdf", nil
}

// snapshot congela nombre, precio y costo de la línea. Si el producto ya no existe se usan
// los datos que trae la línea.
func snapshot(line dto.SaleLineRequest, product *entity.Product) entity.SaleItem {
	item := entity.SaleItem{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Quantity:    line.Quantity,
	}
	if line.UnitPrice != nil {
		item.UnitPrice = *line.UnitPrice
	}
	if product == nil {
		if item.ProductName == "" {
			item.ProductName = deletedProductName
		}
		return item
	}
	item.ProductName = product.Name
	item.UnitCost = product.Cost
	if line.UnitPrice == nil {
		item.UnitPrice = product.Price
	}
	return item
}

// ToSaleResponse convierte la entidad en su salida HTTP.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal().Round(2),
		})
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Date:       s.Date,
		Total:      s.Total,
		Profit:     s.Total.Sub(s.Cost()).Round(2),
		Items:      items,
		CreatedAt:  s.CreatedAt,
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
