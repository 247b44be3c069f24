package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
)

// Cache guarda la vitrina completa (sin filtrar) de un dueño.
type Cache interface {
	Get(ctx context.Context, ownerID string) (*dto.CatalogResponse, bool, error)
	Set(ctx context.Context, ownerID string, value *dto.CatalogResponse, ttl time.Duration) error
	Invalidate(ctx context.Context, ownerID string) error
}
