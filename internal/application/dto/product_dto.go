package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si Price no viene y Margin es numérico, el precio se deriva del costo.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Quantity    *int             `json:"quantity" validate:"required,min=0"`
	Cost        decimal.Decimal  `json:"cost"`
	Price       *decimal.Decimal `json:"price"`
	Margin      string           `json:"margin"`
	MinStock    *int             `json:"min_stock"`
}

// UpdateProductRequest entrada para actualizar un producto. La cantidad se cambia por el ledger.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Cost        *decimal.Decimal `json:"cost"`
	Price       *decimal.Decimal `json:"price"`
	Margin      *string          `json:"margin"`
	MinStock    *int             `json:"min_stock"`
}

// ProductResponse salida de un producto (vista privada del dueño).
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	Margin      string          `json:"margin"`
	NetProfit   decimal.Decimal `json:"net_profit"`
	MinStock    int             `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PricingPreviewRequest evalúa una edición del formulario de precios.
// Changed indica el campo editado: cost | price | margin.
type PricingPreviewRequest struct {
	Cost    decimal.Decimal `json:"cost"`
	Price   decimal.Decimal `json:"price"`
	Margin  string          `json:"margin"`
	Changed string          `json:"changed" validate:"required,oneof=cost price margin"`
}

// PricingPreviewResponse estado resultante del formulario.
type PricingPreviewResponse struct {
	Cost           decimal.Decimal `json:"cost"`
	Price          decimal.Decimal `json:"price"`
	Margin         string          `json:"margin"`
	MarginEditable bool            `json:"margin_editable"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}
