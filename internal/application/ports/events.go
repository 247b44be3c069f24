package ports

// CatalogNotifier publica que el catálogo de un dueño cambió (productos, stock o datos de la tienda).
// Los suscriptores, como la caché del catálogo público, reaccionan invalidando lo que tengan guardado.
type CatalogNotifier interface {
	CatalogChanged(ownerID string)
}

// NopNotifier no publica nada. Útil en tests y cuando no hay bus configurado.
type NopNotifier struct{}

// CatalogChanged no hace nada.
func (NopNotifier) CatalogChanged(string) {}
