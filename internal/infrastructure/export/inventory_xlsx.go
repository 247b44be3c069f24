package export

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/pricing"
)

var _ analytics.InventoryExporter = InventoryXLSX{}

const inventorySheet = "Sheet1"

var inventoryHeader = []string{"Producto", "Cantidad", "Stock mínimo", "Costo", "Precio", "Margen %", "Valor en stock", "Stock bajo"}

// InventoryXLSX exportador de inventario.
type InventoryXLSX struct{}

// ExportInventory una fila por producto. Valor en stock = costo × cantidad (0 si la cantidad es negativa).
func (InventoryXLSX) ExportInventory(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	for i, h := range inventoryHeader {
		f.SetCellValue(inventorySheet, cell(i, 1), h)
	}
	for n, p := range products {
		r := n + 2
		value := p.Cost.Mul(decimal.NewFromInt(int64(max(p.Quantity, 0))))
		low := "no"
		if p.IsLowStock() {
			low = "sí"
		}
		f.SetCellValue(inventorySheet, cell(0, r), p.Name)
		f.SetCellValue(inventorySheet, cell(1, r), p.Quantity)
		f.SetCellValue(inventorySheet, cell(2, r), p.MinStock)
		f.SetCellValue(inventorySheet, cell(3, r), p.Cost.InexactFloat64())
		f.SetCellValue(inventorySheet, cell(4, r), p.Price.InexactFloat64())
		f.SetCellValue(inventorySheet, cell(5, r), pricing.ComputeMargin(p.Cost, p.Price))
		f.SetCellValue(inventorySheet, cell(6, r), value.Round(2).InexactFloat64())
		f.SetCellValue(inventorySheet, cell(7, r), low)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx inventario: %w", err)
	}
	return buf.Bytes(), nil
}

// cell nombre de celda para columna 0-based (hasta Z) y fila 1-based.
func cell(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}
