package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

func TestSalesCSV_EncabezadoYFilas(t *testing.T) {
	rows := []dto.SalesReportRow{{
		SaleID: "s1",
		Date:   time.Date(2026, 2, 14, 9, 5, 0, 0, time.UTC),
		Units:  3,
		Total:  decimal.RequireFromString("60"),
		Cost:   decimal.RequireFromString("30"),
		Profit: decimal.RequireFromString("30"),
	}}

	data, err := SalesCSV{}.ExportSales(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "venta,fecha,unidades,total,costo,utilidad", lines[0])
	assert.Equal(t, "s1,2026-02-14 09:05,3,60.00,30.00,30.00", lines[1])
}

func TestInventoryXLSX_Celdas(t *testing.T) {
	products := []*entity.Product{{
		Name: "Café", Quantity: 2, MinStock: 5,
		Cost: decimal.NewFromInt(10), Price: decimal.NewFromInt(20),
	}}

	data, err := InventoryXLSX{}.ExportInventory(products)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Producto", f.GetCellValue(inventorySheet, "A1"))
	assert.Equal(t, "Café", f.GetCellValue(inventorySheet, "A2"))
	assert.Equal(t, "2", f.GetCellValue(inventorySheet, "B2"))
	assert.Equal(t, "100.0", f.GetCellValue(inventorySheet, "F2"))
	assert.Equal(t, "sí", f.GetCellValue(inventorySheet, "H2"))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "A1", cell(0, 1))
	assert.Equal(t, "H12", cell(7, 12))
}
