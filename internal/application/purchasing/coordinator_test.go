package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
)

const ownerID = "owner-1"

func setup(t *testing.T) (*purchasing.Coordinator, *memory.Store) {
	t.Helper()
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{
		ID: "p-1", OwnerID: ownerID, Name: "Harina", Quantity: 2,
		Cost: decimal.NewFromInt(3), Price: decimal.NewFromInt(5), MinStock: 5,
	}))
	require.NoError(t, store.Suppliers().Create(ctx, &entity.Supplier{ID: "sup-1", OwnerID: ownerID, Name: "Molinos"}))
	return purchasing.NewCoordinator(store, store.Purchases(), store.Suppliers(), nil, nil), store
}

func product(t *testing.T, store *memory.Store, id string) *entity.Product {
	t.Helper()
	p, err := store.Products().GetByID(context.Background(), ownerID, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestRecordPurchase_SumaStockYSobrescribeCosto(t *testing.T) {
	coord, store := setup(t)
	ctx := context.Background()

	out, err := coord.RecordPurchase(ctx, ownerID, dto.CreatePurchaseRequest{
		SupplierID: "sup-1",
		Items:      []dto.PurchaseLineRequest{{ProductID: "p-1", Quantity: 10, NewCost: decimal.RequireFromString("3.5")}},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.StockStatusComplete, out.Stock.Status)
	assert.True(t, out.Purchase.Total.Equal(decimal.NewFromInt(35)))
	assert.Equal(t, "Harina", out.Purchase.Items[0].ProductName)

	p := product(t, store, "p-1")
	assert.Equal(t, 12, p.Quantity)
	assert.True(t, p.Cost.Equal(decimal.RequireFromString("3.5")), "el último costo reemplaza al anterior")
	assert.True(t, p.Price.Equal(decimal.NewFromInt(5)), "el precio no se toca")

	movs, err := store.Movements().ListByProduct(ctx, ownerID, "p-1", 10)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementPurchase, movs[0].Type)
	assert.Equal(t, 10, movs[0].Delta)
}

func TestRecordPurchase_LineaSinProductoSeOmite(t *testing.T) {
	coord, store := setup(t)

	out, err := coord.RecordPurchase(context.Background(), ownerID, dto.CreatePurchaseRequest{
		Items: []dto.PurchaseLineRequest{
			{ProductID: "p-1", Quantity: 1, NewCost: decimal.NewFromInt(4)},
			{ProductID: "borrado", Quantity: 3, NewCost: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, dto.StockStatusPartial, out.Stock.Status)
	require.Len(t, out.Stock.Lines, 2)
	assert.Equal(t, inventory.ReasonProductMissing, out.Stock.Lines[1].Reason)
	assert.True(t, out.Purchase.Total.Equal(decimal.NewFromInt(10)), "el total incluye todas las líneas")
	assert.Equal(t, 3, product(t, store, "p-1").Quantity)
}

func TestRecordPurchase_ProveedorInexistente(t *testing.T) {
	coord, store := setup(t)
	_, err := coord.RecordPurchase(context.Background(), ownerID, dto.CreatePurchaseRequest{
		SupplierID: "nadie",
		Items:      []dto.PurchaseLineRequest{{ProductID: "p-1", Quantity: 1, NewCost: decimal.NewFromInt(4)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, product(t, store, "p-1").Quantity)
}

func TestRecordPurchase_Validaciones(t *testing.T) {
	coord, _ := setup(t)
	cases := map[string]dto.CreatePurchaseRequest{
		"sin líneas":     {},
		"cantidad cero":  {Items: []dto.PurchaseLineRequest{{ProductID: "p-1", Quantity: 0}}},
		"costo negativo": {Items: []dto.PurchaseLineRequest{{ProductID: "p-1", Quantity: 1, NewCost: decimal.NewFromInt(-1)}}},
		"producto vacío": {Items: []dto.PurchaseLineRequest{{Quantity: 1}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := coord.RecordPurchase(context.Background(), ownerID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDeletePurchase_PisoEnCeroYCostoSinRevertir(t *testing.T) {
	coord, store := setup(t)
	ctx := context.Background()

	out, err := coord.RecordPurchase(ctx, ownerID, dto.CreatePurchaseRequest{
		Items: []dto.PurchaseLineRequest{{ProductID: "p-1", Quantity: 10, NewCost: decimal.NewFromInt(4)}},
	})
	require.NoError(t, err)

	// se venden 11 de las 12 unidades antes de borrar la compra
	_, err = store.Products().AdjustQuantity(ctx, ownerID, "p-1", -11, false)
	require.NoError(t, err)

	_, err = coord.DeletePurchase(ctx, ownerID, out.Purchase.ID, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)

	deleted, err := coord.DeletePurchase(ctx, ownerID, out.Purchase.ID, true)
	require.NoError(t, err)
	assert.Equal(t, dto.StockStatusComplete, deleted.Stock.Status)
	assert.Equal(t, 0, *deleted.Stock.Lines[0].QuantityAfter)

	p := product(t, store, "p-1")
	assert.Equal(t, 0, p.Quantity, "la baja por borrado de compra no deja negativos")
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(4)), "el costo no se revierte")

	saved, err := coord.GetByID(ctx, ownerID, out.Purchase.ID)
	require.NoError(t, err)
	assert.Nil(t, saved)

	_, err = coord.DeletePurchase(ctx, ownerID, out.Purchase.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_Compras(t *testing.T) {
	coord, _ := setup(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := coord.RecordPurchase(ctx, ownerID, dto.CreatePurchaseRequest{
			Items: []dto.PurchaseLineRequest{{ProductID: "p-1", Quantity: 1, NewCost: decimal.NewFromInt(3)}},
		})
		require.NoError(t, err)
	}

	page, err := coord.List(ctx, ownerID, repository.DateRange{}, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	other, err := coord.List(ctx, "owner-2", repository.DateRange{}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
