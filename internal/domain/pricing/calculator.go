// Package pricing deriva margen, precio y utilidad a partir del costo y el precio de un producto.
//
//	margen   = ((precio − costo) / costo) × 100   (1 decimal)
//	precio   = costo × (1 + margen/100)           (2 decimales)
//	utilidad = precio − costo                     (2 decimales, puede ser negativa)
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FallbackMargin margen que se muestra cuando hay precio pero el costo es cero.
const FallbackMargin = "100"

var hundred = decimal.NewFromInt(100)

// ComputeMargin devuelve el margen como texto listo para mostrar, o "" si no aplica.
func ComputeMargin(cost, price decimal.Decimal) string {
	switch {
	case cost.IsPositive() && price.IsPositive():
		return price.Sub(cost).Div(cost).Mul(hundred).StringFixed(1)
	case cost.IsZero() && price.IsPositive():
		return FallbackMargin
	default:
		return ""
	}
}

// ComputePrice precio que produce el margen indicado sobre el costo. Un margen negativo deja el precio bajo el costo.
func ComputePrice(cost, margin decimal.Decimal) decimal.Decimal {
	return cost.Mul(decimal.NewFromInt(1).Add(margin.Div(hundred))).Round(2)
}

// NetProfit utilidad por unidad.
func NetProfit(cost, price decimal.Decimal) decimal.Decimal {
	return price.Sub(cost).Round(2)
}

// ParseMargin interpreta el texto del campo margen. ok=false si está vacío o no es numérico.
func ParseMargin(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}
	m, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return m, true
}
