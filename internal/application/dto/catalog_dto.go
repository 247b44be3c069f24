package dto

import "github.com/shopspring/decimal"

// CatalogItem proyección pública de un producto. No expone costo, mínimo ni cantidad exacta.
type CatalogItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Available   bool            `json:"available"`
	Badge       string          `json:"badge"`
}

// CatalogStore datos públicos de la tienda.
type CatalogStore struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Color   string `json:"color"`
}

// CatalogResponse vitrina pública.
type CatalogResponse struct {
	Store CatalogStore  `json:"store"`
	Items []CatalogItem `json:"items"`
}

// CartLineRequest línea del carrito público.
type CartLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderLinkRequest body para POST /api/public/catalog/:ownerID/order-link.
type OrderLinkRequest struct {
	Items []CartLineRequest `json:"items"`
}

// OrderLinkResponse enlace de WhatsApp listo para abrir.
type OrderLinkResponse struct {
	URL     string          `json:"url"`
	Message string          `json:"message"`
	Total   decimal.Decimal `json:"total"`
}
