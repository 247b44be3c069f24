package dto

import "time"

// UpdateOrganizationRequest campos editables de la tienda.
type UpdateOrganizationRequest struct {
	Name          *string `json:"name"`
	LogoURL       *string `json:"logo_url"`
	Color         *string `json:"color"`
	WhatsAppPhone *string `json:"whatsapp_phone"`
}

// OrganizationResponse datos de la tienda.
type OrganizationResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	LogoURL       string    `json:"logo_url,omitempty"`
	Color         string    `json:"color"`
	WhatsAppPhone string    `json:"whatsapp_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
