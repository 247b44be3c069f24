package pricing

import "github.com/shopspring/decimal"

// Form estado del formulario de producto mientras se edita costo, precio o margen.
// MarginText conserva lo que el usuario escribió aunque no sea numérico.
type Form struct {
	Cost       decimal.Decimal
	Price      decimal.Decimal
	MarginText string
}

// NewForm inicia el formulario con el margen derivado de costo y precio.
func NewForm(cost, price decimal.Decimal) *Form {
	return &Form{Cost: cost, Price: price, MarginText: ComputeMargin(cost, price)}
}

// SetCost actualiza el costo y recalcula el margen.
func (f *Form) SetCost(cost decimal.Decimal) {
	f.Cost = cost
	f.MarginText = ComputeMargin(f.Cost, f.Price)
}

// SetPrice actualiza el precio y recalcula el margen.
func (f *Form) SetPrice(price decimal.Decimal) {
	f.Price = price
	f.MarginText = ComputeMargin(f.Cost, f.Price)
}

// SetMargin guarda el texto y, si es numérico, recalcula el precio.
// Devuelve false cuando el precio no cambió (texto vacío/no numérico o margen bloqueado).
func (f *Form) SetMargin(text string) bool {
	if !f.MarginEditable() {
		return false
	}
	f.MarginText = text
	m, ok := ParseMargin(text)
	if !ok {
		return false
	}
	f.Price = ComputePrice(f.Cost, m)
	return true
}

// MarginEditable el margen solo se edita cuando hay costo.
func (f *Form) MarginEditable() bool {
	return f.Cost.IsPositive()
}

// NetProfit utilidad por unidad con los valores actuales.
func (f *Form) NetProfit() decimal.Decimal {
	return NetProfit(f.Cost, f.Price)
}
