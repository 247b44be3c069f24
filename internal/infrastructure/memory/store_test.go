package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

const owner = "owner-1"

func seedProduct(t *testing.T, s *Store, id, name string, qty int) {
	t.Helper()
	now := time.Now()
	require.NoError(t, s.Products().Create(context.Background(), &entity.Product{
		ID: id, OwnerID: owner, Name: name, Quantity: qty,
		Cost: decimal.NewFromInt(10), Price: decimal.NewFromInt(20),
		MinStock: entity.DefaultMinStock, CreatedAt: now, UpdatedAt: now,
	}))
}

func TestAdjustQuantity_PisoEnCero(t *testing.T) {
	s := New()
	seedProduct(t, s, "p1", "Café", 3)
	ctx := context.Background()

	change, err := s.Products().AdjustQuantity(ctx, owner, "p1", -5, true)
	require.NoError(t, err)
	assert.Equal(t, 3, change.Before)
	assert.Equal(t, 0, change.After)
	assert.Equal(t, -3, change.Delta())

	change, err = s.Products().AdjustQuantity(ctx, owner, "p1", -2, false)
	require.NoError(t, err)
	assert.Equal(t, -2, change.After, "sin piso la cantidad puede quedar negativa")
}

func TestAdjustQuantity_ProductoInexistenteDevuelveNil(t *testing.T) {
	s := New()
	change, err := s.Products().AdjustQuantity(context.Background(), owner, "nope", 1, false)
	require.NoError(t, err)
	assert.Nil(t, change)
}

func TestAdjustQuantity_OtroDuenoNoVe(t *testing.T) {
	s := New()
	seedProduct(t, s, "p1", "Café", 3)
	p, err := s.Products().GetByID(context.Background(), "otro", "p1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// borrowedID simula el string que entrega fiber: apunta a un buffer que la siguiente petición reescribe.
func borrowedID(buf []byte) string { return unsafe.String(&buf[0], len(buf)) }

func TestAdjustQuantity_ClaveNoDependeDelIDRecibido(t *testing.T) {
	s := New()
	seedProduct(t, s, "p1", "Café", 3)
	ctx := context.Background()

	buf := []byte("p1")
	change, err := s.Products().AdjustQuantity(ctx, owner, borrowedID(buf), 1, false)
	require.NoError(t, err)
	require.NotNil(t, change)
	copy(buf, "zz")

	assert.Equal(t, "p1", change.ProductID)
	p, err := s.Products().GetByID(ctx, owner, "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 4, p.Quantity)
}

func TestUserRepo_UpdateRoleConservaClave(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "u1", Email: "a@b.com", Role: entity.RoleUser}))

	buf := []byte("u1")
	require.NoError(t, s.Users().UpdateRole(ctx, borrowedID(buf), entity.RoleAdmin))
	copy(buf, "zz")

	u, err := s.Users().GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

func TestAdjustQuantity_Concurrente(t *testing.T) {
	s := New()
	seedProduct(t, s, "p1", "Café", 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Products().AdjustQuantity(ctx, owner, "p1", 1, false)
		}()
	}
	wg.Wait()

	p, err := s.Products().GetByID(ctx, owner, "p1")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Quantity)
}

func TestRunSales_ErrorRevierteTodo(t *testing.T) {
	s := New()
	seedProduct(t, s, "p1", "Café", 10)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.RunSales(ctx, func(pr repository.ProductRepository, mr repository.StockMovementRepository, sr repository.SaleRepository) error {
		if _, err := pr.AdjustQuantity(ctx, owner, "p1", -4, false); err != nil {
			return err
		}
		if err := sr.Create(ctx, &entity.Sale{ID: "s1", OwnerID: owner, Date: time.Now()}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, _ := s.Products().GetByID(ctx, owner, "p1")
	assert.Equal(t, 10, p.Quantity)
	sale, _ := s.Sales().GetByID(ctx, owner, "s1")
	assert.Nil(t, sale)
}

func TestSaleRepo_ItemsNilSeConserva(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: "s1", OwnerID: owner, Date: time.Now()}))

	sale, err := s.Sales().GetByID(ctx, owner, "s1")
	require.NoError(t, err)
	assert.Nil(t, sale.Items)
}

func TestSaleRepo_ListOrdenYRango(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Sales().Create(ctx, &entity.Sale{ID: id, OwnerID: owner, Date: base.AddDate(0, 0, i)}))
	}

	all, err := s.Sales().List(ctx, owner, repository.DateRange{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	ranged, err := s.Sales().List(ctx, owner, repository.DateRange{From: base.AddDate(0, 0, 1)}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	paged, err := s.Sales().List(ctx, owner, repository.DateRange{}, 1, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "b", paged[0].ID)
}

func TestProductRepo_BusquedaSinMayusculas(t *testing.T) {
	s := New()
	seedProduct(t, s, "p1", "Café Molido", 3)
	seedProduct(t, s, "p2", "Té Verde", 8)

	list, err := s.Products().List(context.Background(), owner, repository.ProductFilter{Search: "CAFÉ"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)

	low, err := s.Products().List(context.Background(), owner, repository.ProductFilter{LowStockOnly: true})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "p1", low[0].ID)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "u1", Email: "a@b.com"}))
	err := s.Users().Create(ctx, &entity.User{ID: "u2", Email: "A@B.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAnalytics_MetricasYTop(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.Sales().Create(ctx, &entity.Sale{
		ID: "s1", OwnerID: owner, Date: now, Total: decimal.NewFromInt(60),
		Items: []entity.SaleItem{
			{ProductID: "p1", ProductName: "Café", Quantity: 2, UnitPrice: decimal.NewFromInt(20), UnitCost: decimal.NewFromInt(10)},
			{ProductID: "p2", ProductName: "Té", Quantity: 1, UnitPrice: decimal.NewFromInt(20), UnitCost: decimal.NewFromInt(5)},
		},
	}))
	require.NoError(t, s.Expenses().Create(ctx, &entity.Expense{ID: "e1", OwnerID: owner, Date: now, Amount: decimal.NewFromInt(7)}))

	from, to := now.Add(-time.Hour), now.Add(time.Hour)
	m, err := s.Analytics().GetSalesMetrics(ctx, owner, from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, m.SaleCount)
	assert.Equal(t, 3, m.UnitsSold)
	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(60)))
	assert.True(t, m.Cost.Equal(decimal.NewFromInt(25)))

	exp, err := s.Analytics().GetExpensesTotal(ctx, owner, from, to)
	require.NoError(t, err)
	assert.True(t, exp.Equal(decimal.NewFromInt(7)))

	top, err := s.Analytics().GetTopProducts(ctx, owner, from, to, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ProductID)
}
