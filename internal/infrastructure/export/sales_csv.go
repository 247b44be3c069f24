// Package export serializa reportes: ventas en CSV (gocsv) e inventario en XLSX (excelize).
package export

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
)

var _ analytics.SalesExporter = SalesCSV{}

// salesCSVRow columnas del CSV; montos ya formateados con dos decimales.
type salesCSVRow struct {
	SaleID string `csv:"venta"`
	Date   string `csv:"fecha"`
	Units  int    `csv:"unidades"`
	Total  string `csv:"total"`
	Cost   string `csv:"costo"`
	Profit string `csv:"utilidad"`
}

// SalesCSV exportador de ventas.
type SalesCSV struct{}

// ExportSales una fila por venta con encabezado; sin ventas devuelve solo el encabezado.
func (SalesCSV) ExportSales(rows []dto.SalesReportRow) ([]byte, error) {
	out := make([]*salesCSVRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &salesCSVRow{
			SaleID: r.SaleID,
			Date:   r.Date.Format("2006-01-02 15:04"),
			Units:  r.Units,
			Total:  r.Total.StringFixed(2),
			Cost:   r.Cost.StringFixed(2),
			Profit: r.Profit.StringFixed(2),
		})
	}
	data, err := gocsv.MarshalBytes(&out)
	if err != nil {
		return nil, fmt.Errorf("csv ventas: %w", err)
	}
	return data, nil
}
