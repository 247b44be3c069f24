package dto

import "time"

// Estados de una operación que toca el stock de varias líneas.
const (
	StockStatusComplete = "complete"
	StockStatusPartial  = "partial"
)

// SetQuantityRequest body para PUT /api/products/:id/quantity.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

// AdjustQuantityRequest body para POST /api/products/:id/adjust.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// StockLevelResponse cantidad antes y después de un ajuste.
type StockLevelResponse struct {
	ProductID string `json:"product_id"`
	Previous  int    `json:"previous"`
	Quantity  int    `json:"quantity"`
}

// StockLineResult resultado de una línea de venta o compra sobre el stock.
type StockLineResult struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	Applied       bool   `json:"applied"`
	QuantityAfter *int   `json:"quantity_after,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// StockResult resumen del efecto sobre el stock: complete o partial.
type StockResult struct {
	Status string            `json:"status"`
	Reason string            `json:"reason,omitempty"`
	Lines  []StockLineResult `json:"lines"`
}

// LowStockItem producto bajo su mínimo.
type LowStockItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
	Missing   int    `json:"missing"`
}

// StockMovementResponse entrada de la bitácora de stock.
type StockMovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Delta         int       `json:"delta"`
	QuantityAfter int       `json:"quantity_after"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
