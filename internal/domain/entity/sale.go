package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una foto del producto al momento de la venta; no cambia si el producto cambia después.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// Subtotal cantidad por precio unitario.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale registro de una venta. Items nil significa que las líneas guardadas no se pudieron leer
// como lista; en ese caso la anulación no restaura stock.
type Sale struct {
	ID         string
	OwnerID    string
	CustomerID string
	Date       time.Time
	Total      decimal.Decimal
	Items      []SaleItem
	CreatedAt  time.Time
}

// Cost suma del costo de las líneas (para utilidad).
func (s *Sale) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
