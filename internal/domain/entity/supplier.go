package entity

import "time"

// Supplier proveedor del negocio.
type Supplier struct {
	ID        string
	OwnerID   string
	Name      string
	Contact   string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
