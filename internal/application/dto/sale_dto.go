package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea del carrito del punto de venta.
// ProductName y UnitPrice son opcionales; por defecto se toman del producto.
type SaleLineRequest struct {
	ProductID   string           `json:"product_id" validate:"required"`
	ProductName string           `json:"product_name"`
	Quantity    int              `json:"quantity" validate:"required,min=1"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Date       *time.Time        `json:"date"`
	Items      []SaleLineRequest `json:"items" validate:"required,min=1"`
}

// SaleItemResponse foto de una línea vendida.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id,omitempty"`
	Date       time.Time          `json:"date"`
	Total      decimal.Decimal    `json:"total"`
	Profit     decimal.Decimal    `json:"profit"`
	Items      []SaleItemResponse `json:"items"`
	CreatedAt  time.Time          `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SaleReceiptResponse resultado de registrar una venta.
type SaleReceiptResponse struct {
	Sale  SaleResponse `json:"sale"`
	Stock StockResult  `json:"stock"`
}

// VoidSaleResponse resultado de anular una venta.
type VoidSaleResponse struct {
	SaleID string      `json:"sale_id"`
	Stock  StockResult `json:"stock"`
}
