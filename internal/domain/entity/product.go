package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinStock umbral de stock bajo cuando no se indica otro.
const DefaultMinStock = 5

// Product representa un producto del catálogo de un dueño.
// Quantity nunca queda negativa por ajustes manuales; una venta sí puede dejarla negativa.
type Product struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Image       string
	Quantity    int
	Cost        decimal.Decimal // último costo conocido (lo sobrescribe cada compra)
	Price       decimal.Decimal // precio de venta
	MinStock    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si la cantidad está por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.MinStock
}

// Available indica si hay unidades para la vitrina pública.
func (p *Product) Available() bool {
	return p.Quantity > 0
}
