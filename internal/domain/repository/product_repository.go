package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
type ProductFilter struct {
	Search       string // coincidencia en nombre, sin distinguir mayúsculas
	LowStockOnly bool
	Limit        int // 0 = sin límite
	Offset       int
}

// QuantityChange cantidad antes y después de un ajuste aplicado por el almacenamiento.
type QuantityChange struct {
	ProductID string
	Before    int
	After     int
}

// Delta unidades efectivamente aplicadas (puede diferir del pedido si hubo piso en cero).
func (c QuantityChange) Delta() int { return c.After - c.Before }

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones están acotadas al dueño; GetByID, SetQuantity y AdjustQuantity devuelven nil si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateCost(ctx context.Context, ownerID, id string, cost decimal.Decimal) error
	List(ctx context.Context, ownerID string, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, ownerID, id string) error

	// SetQuantity sobrescribe la cantidad.
	SetQuantity(ctx context.Context, ownerID, id string, quantity int) (*QuantityChange, error)
	// AdjustQuantity suma delta en una sola operación atómica; con floorAtZero el resultado no baja de 0.
	AdjustQuantity(ctx context.Context, ownerID, id string, delta int, floorAtZero bool) (*QuantityChange, error)

	// ListLowStock productos con quantity < min_stock. ownerID vacío = todos los dueños.
	ListLowStock(ctx context.Context, ownerID string) ([]*entity.Product, error)
}
