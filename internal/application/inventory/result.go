package inventory

import (
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// Motivos por los que una línea no movió stock.
const (
	ReasonProductMissing  = "producto_inexistente"
	ReasonItemsUnreadable = "lineas_ilegibles"
)

// Result acumula el resultado por línea de una operación que toca varias cantidades.
// Permite distinguir una aplicación completa de una parcial.
type Result struct {
	lines      []dto.StockLineResult
	unreadable bool
}

// Applied registra una línea aplicada.
func (r *Result) Applied(requested int, change *repository.QuantityChange) {
	after := change.After
	r.lines = append(r.lines, dto.StockLineResult{
		ProductID:     change.ProductID,
		Quantity:      requested,
		Applied:       true,
		QuantityAfter: &after,
	})
}

// Skipped registra una línea omitida.
func (r *Result) Skipped(productID string, requested int, reason string) {
	r.lines = append(r.lines, dto.StockLineResult{
		ProductID: productID,
		Quantity:  requested,
		Reason:    reason,
	})
}

// ItemsUnreadable marca que las líneas guardadas no se pudieron leer y no se tocó stock.
func (r *Result) ItemsUnreadable() {
	r.unreadable = true
}

// Status "complete" si todas las líneas se aplicaron; "partial" en otro caso.
func (r *Result) Status() string {
	if r.unreadable {
		return dto.StockStatusPartial
	}
	for _, l := range r.lines {
		if !l.Applied {
			return dto.StockStatusPartial
		}
	}
	return dto.StockStatusComplete
}

// DTO salida para la API.
func (r *Result) DTO() dto.StockResult {
	lines := r.lines
	if lines == nil {
		lines = []dto.StockLineResult{}
	}
	out := dto.StockResult{Status: r.Status(), Lines: lines}
	if r.unreadable {
		out.Reason = ReasonItemsUnreadable
	}
	return out
}
