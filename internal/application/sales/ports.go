package sales

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// TxRunner ejecuta la venta completa (registro + ajustes de stock) en una sola transacción.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptGenerator puerto de salida para el comprobante de venta en PDF.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, org *entity.Organization) ([]byte, error)
}
