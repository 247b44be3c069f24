package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del día y del mes en curso.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (today_sales, today_profit, monthly_sales,
// monthly_profit, monthly_expenses, monthly_net, low_stock_count, top_products[5]).
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}

	summary, err := h.uc.GetSummary(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err, "")
	}

	return c.JSON(summary)
}
