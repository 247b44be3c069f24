package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLineRequest unidades recibidas y nuevo costo unitario de un producto.
type PurchaseLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	NewCost   decimal.Decimal `json:"new_cost"`
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	SupplierID string                `json:"supplier_id"`
	Date       *time.Time            `json:"date"`
	Items      []PurchaseLineRequest `json:"items" validate:"required,min=1"`
}

// PurchaseItemResponse línea de compra.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	NewCost     decimal.Decimal `json:"new_cost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra registrada.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	SupplierID string                 `json:"supplier_id,omitempty"`
	Date       time.Time              `json:"date"`
	Total      decimal.Decimal        `json:"total"`
	Items      []PurchaseItemResponse `json:"items"`
	CreatedAt  time.Time              `json:"created_at"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// PurchaseReceiptResponse resultado de registrar una compra.
type PurchaseReceiptResponse struct {
	Purchase PurchaseResponse `json:"purchase"`
	Stock    StockResult      `json:"stock"`
}

// DeletePurchaseResponse resultado de eliminar una compra.
type DeletePurchaseResponse struct {
	PurchaseID string      `json:"purchase_id"`
	Stock      StockResult `json:"stock"`
}
