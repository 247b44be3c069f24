package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestForm_CostoLuegoMargen(t *testing.T) {
	f := NewForm(decimal.Zero, decimal.Zero)
	assert.False(t, f.MarginEditable(), "sin costo el margen está bloqueado")

	f.SetCost(d("50"))
	assert.Equal(t, "", f.MarginText, "sin precio no hay margen")
	assert.True(t, f.MarginEditable())

	assert.True(t, f.SetMargin("20"))
	assert.Equal(t, "60.00", f.Price.StringFixed(2))
	assert.Equal(t, "10.00", f.NetProfit().StringFixed(2))
}

func TestForm_MargenNoNumericoConservaTexto(t *testing.T) {
	f := NewForm(d("50"), d("60"))
	assert.Equal(t, "20.0", f.MarginText)

	assert.False(t, f.SetMargin("2x"))
	assert.Equal(t, "2x", f.MarginText)
	assert.Equal(t, "60", f.Price.String(), "el precio no cambia con texto inválido")

	assert.False(t, f.SetMargin(""))
	assert.Equal(t, "", f.MarginText)
	assert.Equal(t, "60", f.Price.String())
}

func TestForm_CambioDePrecioRecalculaMargen(t *testing.T) {
	f := NewForm(d("50"), d("60"))
	f.SetPrice(d("75"))
	assert.Equal(t, "50.0", f.MarginText)

	f.SetCost(decimal.Zero)
	assert.Equal(t, FallbackMargin, f.MarginText)
	assert.False(t, f.SetMargin("30"), "margen bloqueado con costo cero")
	assert.Equal(t, "75", f.Price.String())
}
