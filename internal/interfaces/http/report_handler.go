package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler reportes de ventas y exportaciones (CSV, XLSX).
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Reporte de ventas con utilidad por venta
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD). Default: primer día del mes."
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	start, end, ok := reportPeriod(c)
	if !ok {
		return validation(c, "from/to deben tener formato YYYY-MM-DD y from <= to")
	}
	report, err := h.uc.SalesReport(c.Context(), ownerID, start, end)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(report)
}

// SalesCSV godoc
// @Summary      Exportar ventas a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/reports/sales.csv [get]
func (h *ReportHandler) SalesCSV(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	start, end, ok := reportPeriod(c)
	if !ok {
		return validation(c, "from/to deben tener formato YYYY-MM-DD y from <= to")
	}
	data, filename, err := h.uc.ExportSalesCSV(c.Context(), ownerID, start, end)
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// InventoryXLSX godoc
// @Summary      Exportar inventario a Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	data, filename, err := h.uc.ExportInventoryXLSX(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
