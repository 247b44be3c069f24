package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// DateRange filtro por fecha; valores cero = sin límite.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains indica si t cae dentro del rango.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// SaleRepository persistencia de ventas. Las líneas se guardan como foto inmutable.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Sale, error)
	// List ordena por fecha descendente; limit <= 0 = sin límite.
	List(ctx context.Context, ownerID string, r DateRange, limit, offset int) ([]*entity.Sale, error)
	Delete(ctx context.Context, ownerID, id string) error
}
