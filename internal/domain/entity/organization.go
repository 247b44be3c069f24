package entity

import "time"

// Valores iniciales de la organización creada automáticamente.
const (
	DefaultOrganizationName  = "Mi Empresa"
	DefaultOrganizationColor = "#3b82f6"
)

// Organization datos públicos de la tienda de un dueño (uno por usuario).
type Organization struct {
	ID            string
	OwnerID       string
	Name          string
	LogoURL       string
	Color         string
	WhatsAppPhone string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
