package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
)

const ownerID = "owner-1"

// notifierSpy cuenta las notificaciones de cambio de catálogo.
type notifierSpy struct{ calls []string }

func (n *notifierSpy) CatalogChanged(ownerID string) { n.calls = append(n.calls, ownerID) }

func newLedger(t *testing.T, quantity, minStock int) (*inventory.StockLedger, *memory.Store, *notifierSpy, string) {
	t.Helper()
	store := memory.New()
	p := &entity.Product{
		ID:        "p-1",
		OwnerID:   ownerID,
		Name:      "Café",
		Quantity:  quantity,
		Cost:      decimal.NewFromInt(10),
		Price:     decimal.NewFromInt(15),
		MinStock:  minStock,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Products().Create(context.Background(), p))
	spy := &notifierSpy{}
	return inventory.NewStockLedger(store, store.Products(), store.Movements(), spy), store, spy, p.ID
}

func TestStockLedger_SetQuantity(t *testing.T) {
	ledger, store, spy, id := newLedger(t, 3, 5)
	ctx := context.Background()

	out, err := ledger.SetQuantity(ctx, ownerID, id, 12)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Previous)
	assert.Equal(t, 12, out.Quantity)
	assert.Equal(t, []string{ownerID}, spy.calls)

	p, _ := store.Products().GetByID(ctx, ownerID, id)
	assert.Equal(t, 12, p.Quantity)

	movs, err := ledger.Movements(ctx, ownerID, id, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementManual, movs[0].Type)
	assert.Equal(t, 9, movs[0].Delta)
	assert.Equal(t, 12, movs[0].QuantityAfter)
}

func TestStockLedger_SetQuantity_NegativaRechazada(t *testing.T) {
	ledger, _, spy, id := newLedger(t, 3, 5)
	_, err := ledger.SetQuantity(context.Background(), ownerID, id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, spy.calls)
}

func TestStockLedger_IncrementDecrement(t *testing.T) {
	ledger, _, _, id := newLedger(t, 1, 5)
	ctx := context.Background()

	out, err := ledger.Increment(ctx, ownerID, id)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Quantity)

	out, err = ledger.Decrement(ctx, ownerID, id)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Quantity)
}

func TestStockLedger_DecrementoManualConPisoEnCero(t *testing.T) {
	ledger, _, _, id := newLedger(t, 0, 5)
	ctx := context.Background()

	out, err := ledger.Decrement(ctx, ownerID, id)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Previous)
	assert.Equal(t, 0, out.Quantity, "el decremento manual no baja de cero")

	out, err = ledger.Adjust(ctx, ownerID, id, -7)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)

	// el movimiento se registra igual, con delta efectivo 0
	movs, err := ledger.Movements(ctx, ownerID, id, 10)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, 0, m.Delta)
		assert.Equal(t, 0, m.QuantityAfter)
	}
}

func TestStockLedger_AdjustDeltaCeroInvalido(t *testing.T) {
	ledger, _, _, id := newLedger(t, 4, 5)
	_, err := ledger.Adjust(context.Background(), ownerID, id, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockLedger_ProductoInexistente(t *testing.T) {
	ledger, _, spy, _ := newLedger(t, 4, 5)
	ctx := context.Background()

	_, err := ledger.Increment(ctx, ownerID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = ledger.SetQuantity(ctx, ownerID, "no-existe", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = ledger.Movements(ctx, ownerID, "no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, spy.calls)
}

func TestStockLedger_OtroDuenoNoVeElProducto(t *testing.T) {
	ledger, _, _, id := newLedger(t, 4, 5)
	_, err := ledger.Increment(context.Background(), "owner-2", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockLedger_LowStock(t *testing.T) {
	ledger, store, _, id := newLedger(t, 2, 5)
	ctx := context.Background()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{
		ID: "p-2", OwnerID: ownerID, Name: "Té", Quantity: 20, MinStock: 5,
	}))

	list, err := ledger.LowStock(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ProductID)
	assert.Equal(t, 3, list[0].Missing)
}

func TestResult_Status(t *testing.T) {
	var r inventory.Result
	assert.Equal(t, "complete", r.Status(), "sin líneas la operación es completa")
	assert.Empty(t, r.DTO().Lines)

	r.Skipped("p-x", 2, inventory.ReasonProductMissing)
	out := r.DTO()
	assert.Equal(t, "partial", out.Status)
	require.Len(t, out.Lines, 1)
	assert.False(t, out.Lines[0].Applied)
	assert.Equal(t, inventory.ReasonProductMissing, out.Lines[0].Reason)

	var unreadable inventory.Result
	unreadable.ItemsUnreadable()
	assert.Equal(t, "partial", unreadable.Status())
	assert.Equal(t, inventory.ReasonItemsUnreadable, unreadable.DTO().Reason)
}
