package purchasing

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// TxRunner ejecuta la compra completa (registro + stock + costo) en una sola transacción.
type TxRunner interface {
	RunPurchases(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
