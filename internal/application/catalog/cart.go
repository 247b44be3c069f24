package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
)

// CartLine producto del catálogo y unidades pedidas.
type CartLine struct {
	Item     dto.CatalogItem
	Quantity int
}

// Cart carrito efímero del catálogo público. Mantiene el orden de inserción y nunca se persiste.
type Cart struct {
	lines []CartLine
}

// NewCart carrito vacío.
func NewCart() *Cart { return &Cart{} }

// Add agrega una unidad del producto; si ya está, incrementa su cantidad.
func (c *Cart) Add(item dto.CatalogItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// Remove quita el producto del carrito.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity fija la cantidad de una línea existente; el mínimo es 1.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines copia de las líneas actuales.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len número de líneas.
func (c *Cart) Len() int { return len(c.lines) }

// Total Σ precio × cantidad.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
