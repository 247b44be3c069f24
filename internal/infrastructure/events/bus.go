// Package events bus de eventos en proceso sobre asaskevich/EventBus.
package events

import (
	EventBus "github.com/asaskevich/EventBus"

	"github.com/jhoicas/gestion-stock/internal/application/ports"
)

// TopicCatalogChanged argumento: ownerID string.
const TopicCatalogChanged = "catalog:changed"

var _ ports.CatalogNotifier = (*Bus)(nil)

// Bus publica eventos de dominio. Los suscriptores corren en la goroutine que publica,
// después de confirmada la transacción que originó el cambio.
type Bus struct {
	bus EventBus.Bus
}

// New crea un bus vacío.
func New() *Bus {
	return &Bus{bus: EventBus.New()}
}

// CatalogChanged publica TopicCatalogChanged.
func (b *Bus) CatalogChanged(ownerID string) {
	b.bus.Publish(TopicCatalogChanged, ownerID)
}

// OnCatalogChanged registra un suscriptor.
func (b *Bus) OnCatalogChanged(fn func(ownerID string)) error {
	return b.bus.Subscribe(TopicCatalogChanged, fn)
}
