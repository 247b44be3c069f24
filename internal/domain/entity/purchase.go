package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem línea de una compra a proveedor: unidades recibidas y nuevo costo unitario.
type PurchaseItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	NewCost     decimal.Decimal `json:"new_cost"`
}

// Purchase reabastecimiento. Total = Σ NewCost × Quantity.
type Purchase struct {
	ID         string
	OwnerID    string
	SupplierID string
	Date       time.Time
	Total      decimal.Decimal
	Items      []PurchaseItem
	CreatedAt  time.Time
}
