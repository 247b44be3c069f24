package jobs

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

func TestLowStockScan_RegistraProductosBajoMinimo(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	now := time.Now()
	for _, p := range []entity.Product{
		{ID: "p1", OwnerID: "o1", Name: "Café", Quantity: 1, MinStock: 5},
		{ID: "p2", OwnerID: "o2", Name: "Té", Quantity: 9, MinStock: 5},
		{ID: "p3", OwnerID: "o2", Name: "Yerba", Quantity: 0, MinStock: 5},
	} {
		p.Cost, p.Price, p.CreatedAt = decimal.Zero, decimal.Zero, now
		require.NoError(t, store.Products().Create(ctx, &p))
	}

	var buf bytes.Buffer
	n, err := NewLowStockScan(store.Products(), logger.NewWriter(&buf, "info")).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, strings.Count(buf.String(), `"message":"stock bajo"`))
	assert.Contains(t, buf.String(), `"product":"Yerba"`)
}

func TestScheduler_SpecInvalido(t *testing.T) {
	s := NewScheduler(nil)
	err := s.AddLowStockScan("cada rato", memory.New().Products())
	assert.Error(t, err)
	assert.NoError(t, s.AddLowStockScan("", nil))
}
