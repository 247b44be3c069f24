package analytics

import (
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// SalesExporter serializa las filas del reporte de ventas (CSV).
type SalesExporter interface {
	ExportSales(rows []dto.SalesReportRow) ([]byte, error)
}

// InventoryExporter genera la planilla de inventario (XLSX).
type InventoryExporter interface {
	ExportInventory(products []*entity.Product) ([]byte, error)
}
