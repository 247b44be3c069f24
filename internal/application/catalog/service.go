// Package catalog arma la vitrina pública de una tienda y el pedido por WhatsApp.
// La proyección solo expone disponibilidad, nunca costo, mínimo ni cantidad exacta.
package catalog

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

// Etiquetas de disponibilidad.
const (
	BadgeAvailable = "Disponible"
	BadgeSoldOut   = "Agotado"
)

// Config parámetros del catálogo público.
type Config struct {
	CacheTTL       time.Duration
	DefaultOwnerID string // modo single-tenant
	WhatsAppNumber string // se usa si la tienda no tiene uno propio
}

// Service casos de uso del catálogo público.
type Service struct {
	orgRepo     repository.OrganizationRepository
	productRepo repository.ProductRepository
	cache       Cache
	cfg         Config
	log         *logger.Logger
}

// NewService construye el servicio. cache puede ser nil (sin caché).
func NewService(
	orgRepo repository.OrganizationRepository,
	productRepo repository.ProductRepository,
	cache Cache,
	cfg Config,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{orgRepo: orgRepo, productRepo: productRepo, cache: cache, cfg: cfg, log: log}
}

// DefaultOwnerID dueño servido en modo single-tenant ("" si no aplica).
func (s *Service) DefaultOwnerID() string { return s.cfg.DefaultOwnerID }

// CatalogFor vitrina del dueño, filtrada por query si no está vacía.
// Devuelve domain.ErrStoreNotFound si el dueño no tiene tienda.
func (s *Service) CatalogFor(ctx context.Context, ownerID, query string) (*dto.CatalogResponse, error) {
	if ownerID == "" {
		return nil, domain.ErrStoreNotFound
	}
	full, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Filter(full, query), nil
}

// Invalidate descarta la vitrina en caché del dueño.
func (s *Service) Invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("catálogo: invalidar caché")
	}
}

func (s *Service) load(ctx context.Context, ownerID string) (*dto.CatalogResponse, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, ownerID)
		if err != nil {
			s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("catálogo: lectura de caché")
		} else if ok {
			return cached, nil
		}
	}

	org, err := s.orgRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrStoreNotFound
	}
	products, err := s.productRepo.List(ctx, ownerID, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	view := &dto.CatalogResponse{
		Store: dto.CatalogStore{OwnerID: org.OwnerID, Name: org.Name, LogoURL: org.LogoURL, Color: org.Color},
		Items: make([]dto.CatalogItem, 0, len(products)),
	}
	for _, p := range products {
		view.Items = append(view.Items, Project(p))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ownerID, view, s.cfg.CacheTTL); err != nil {
			s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("catálogo: escritura de caché")
		}
	}
	return view, nil
}

// Project proyección pública de un producto.
func Project(p *entity.Product) dto.CatalogItem {
	item := dto.CatalogItem{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Available:   p.Available(),
		Badge:       BadgeSoldOut,
	}
	if item.Available {
		item.Badge = BadgeAvailable
	}
	return item
}

// Filter filtra por nombre o descripción sin distinguir mayúsculas (case folding).
func Filter(view *dto.CatalogResponse, query string) *dto.CatalogResponse {
	query = strings.TrimSpace(query)
	if query == "" {
		return view
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := &dto.CatalogResponse{Store: view.Store, Items: make([]dto.CatalogItem, 0)}
	for _, it := range view.Items {
		if strings.Contains(fold.String(it.Name), needle) || strings.Contains(fold.String(it.Description), needle) {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// OrderLink arma el carrito con precios del catálogo y devuelve el enlace de WhatsApp.
// Los productos agotados o inexistentes se rechazan con domain.ErrProductUnavailable.
func (s *Service) OrderLink(ctx context.Context, ownerID string, in dto.OrderLinkRequest) (*dto.OrderLinkResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	full, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]dto.CatalogItem, len(full.Items))
	for _, it := range full.Items {
		byID[it.ID] = it
	}

	// las líneas repetidas del mismo producto suman sus unidades
	cart := NewCart()
	units := make(map[string]int, len(in.Items))
	for _, line := range in.Items {
		item, ok := byID[line.ProductID]
		if !ok || !item.Available {
			return nil, domain.ErrProductUnavailable
		}
		if _, seen := units[item.ID]; !seen {
			cart.Add(item)
		}
		units[item.ID] += max(line.Quantity, 1)
		cart.SetQuantity(item.ID, units[item.ID])
	}

	number := s.cfg.WhatsAppNumber
	if org, err := s.orgRepo.GetByOwner(ctx, ownerID); err == nil && org != nil && org.WhatsAppPhone != "" {
		number = org.WhatsAppPhone
	}
	msg := OrderMessage(cart)
	return &dto.OrderLinkResponse{
		URL:     WhatsAppURL(number, msg),
		Message: msg,
		Total:   cart.Total().Round(2),
	}, nil
}
