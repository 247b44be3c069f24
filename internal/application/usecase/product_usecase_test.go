package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
)

const ownerID = "owner-1"

type notifierSpy struct{ calls int }

func (n *notifierSpy) CatalogChanged(string) { n.calls++ }

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func newProductUC() (*usecase.ProductUseCase, *notifierSpy) {
	spy := &notifierSpy{}
	return usecase.NewProductUseCase(memory.New().Products(), spy), spy
}

func TestProductCreate_PrecioDerivadoDelMargen(t *testing.T) {
	uc, spy := newProductUC()
	out, err := uc.Create(context.Background(), ownerID, dto.CreateProductRequest{
		Name:     "  Café  ",
		Quantity: intPtr(3),
		Cost:     dec("10"),
		Margin:   "50",
	})
	require.NoError(t, err)

	assert.Equal(t, "Café", out.Name)
	assert.True(t, out.Price.Equal(dec("15")))
	assert.Equal(t, "50.0", out.Margin)
	assert.True(t, out.NetProfit.Equal(dec("5")))
	assert.Equal(t, entity.DefaultMinStock, out.MinStock)
	assert.True(t, out.LowStock)
	assert.Equal(t, 1, spy.calls)
}

func TestProductCreate_PrecioExplicitoGanaAlMargen(t *testing.T) {
	uc, _ := newProductUC()
	out, err := uc.Create(context.Background(), ownerID, dto.CreateProductRequest{
		Name:     "Té",
		Quantity: intPtr(10),
		Cost:     dec("10"),
		Price:    decPtr("12"),
		Margin:   "50",
		MinStock: intPtr(2),
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(dec("12")))
	assert.Equal(t, "20.0", out.Margin)
	assert.False(t, out.LowStock)
}

func TestProductCreate_SinCosto(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	out, err := uc.Create(ctx, ownerID, dto.CreateProductRequest{Name: "Regalo", Quantity: intPtr(1), Margin: "50"})
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero(), "sin costo el margen no deriva precio")
	assert.Equal(t, "", out.Margin)

	out, err = uc.Create(ctx, ownerID, dto.CreateProductRequest{Name: "Muestra", Quantity: intPtr(1), Price: decPtr("5")})
	require.NoError(t, err)
	assert.Equal(t, "100", out.Margin)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc, spy := newProductUC()
	cases := map[string]dto.CreateProductRequest{
		"nombre vacío":      {Name: "  ", Quantity: intPtr(1)},
		"sin cantidad":      {Name: "X"},
		"cantidad negativa": {Name: "X", Quantity: intPtr(-1)},
		"costo negativo":    {Name: "X", Quantity: intPtr(1), Cost: dec("-1")},
		"precio negativo":   {Name: "X", Quantity: intPtr(1), Price: decPtr("-2")},
		"mínimo negativo":   {Name: "X", Quantity: intPtr(1), MinStock: intPtr(-1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), ownerID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Zero(t, spy.calls)
}

func TestProductUpdate_CostoRecalculaMargenNoPrecio(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, ownerID, dto.CreateProductRequest{Name: "Café", Quantity: intPtr(3), Cost: dec("10"), Price: decPtr("15")})
	require.NoError(t, err)

	out, err := uc.Update(ctx, ownerID, created.ID, dto.UpdateProductRequest{Cost: decPtr("12")})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(dec("15")))
	assert.Equal(t, "25.0", out.Margin)
}

func TestProductUpdate_MargenRecalculaPrecio(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, ownerID, dto.CreateProductRequest{Name: "Café", Quantity: intPtr(3), Cost: dec("8"), Price: decPtr("10")})
	require.NoError(t, err)

	out, err := uc.Update(ctx, ownerID, created.ID, dto.UpdateProductRequest{Margin: strPtr("50")})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(dec("12")))

	out, err = uc.Update(ctx, ownerID, created.ID, dto.UpdateProductRequest{Margin: strPtr("abc")})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(dec("12")), "un margen no numérico no cambia el precio")
}

func TestProductUpdate_MargenIgnoradoSinCosto(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, ownerID, dto.CreateProductRequest{Name: "Muestra", Quantity: intPtr(1), Price: decPtr("5")})
	require.NoError(t, err)

	out, err := uc.Update(ctx, ownerID, created.ID, dto.UpdateProductRequest{Margin: strPtr("30")})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(dec("5")))
	assert.Equal(t, "100", out.Margin)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc, _ := newProductUC()
	out, err := uc.Update(context.Background(), ownerID, "no-existe", dto.UpdateProductRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_Confirmacion(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, ownerID, dto.CreateProductRequest{Name: "Café", Quantity: intPtr(3)})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, ownerID, created.ID, false), domain.ErrConfirmationRequired)
	require.NoError(t, uc.Delete(ctx, ownerID, created.ID, true))
	assert.ErrorIs(t, uc.Delete(ctx, ownerID, created.ID, true), domain.ErrNotFound)

	got, err := uc.GetByID(ctx, ownerID, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductList_BusquedaYStockBajo(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()
	for _, in := range []dto.CreateProductRequest{
		{Name: "Café molido", Quantity: intPtr(1)},
		{Name: "Café en grano", Quantity: intPtr(50)},
		{Name: "Azúcar", Quantity: intPtr(2)},
	} {
		_, err := uc.Create(ctx, ownerID, in)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, ownerID, repository.ProductFilter{Search: "café"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	out, err = uc.List(ctx, ownerID, repository.ProductFilter{LowStockOnly: true})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	out, err = uc.List(ctx, "otro", repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestPricingPreview(t *testing.T) {
	uc, _ := newProductUC()

	out, err := uc.PricingPreview(dto.PricingPreviewRequest{Cost: dec("8"), Price: dec("9"), Margin: "25", Changed: "margin"})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(dec("10")))
	assert.Equal(t, "25", out.Margin)
	assert.True(t, out.MarginEditable)
	assert.True(t, out.NetProfit.Equal(dec("2")))

	out, err = uc.PricingPreview(dto.PricingPreviewRequest{Price: dec("9"), Margin: "25", Changed: "margin"})
	require.NoError(t, err)
	assert.False(t, out.MarginEditable)
	assert.True(t, out.Price.Equal(dec("9")))
	assert.Equal(t, "100", out.Margin)

	out, err = uc.PricingPreview(dto.PricingPreviewRequest{Cost: dec("10"), Price: dec("0"), Changed: "price"})
	require.NoError(t, err)
	assert.Equal(t, "", out.Margin, "con costo y precio cero el margen queda vacío")

	_, err = uc.PricingPreview(dto.PricingPreviewRequest{Cost: dec("10"), Changed: "otro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
