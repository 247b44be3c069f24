package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/ports"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/pricing"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad se mueve por el ledger de stock.
type ProductUseCase struct {
	repo     repository.ProductRepository
	notifier ports.CatalogNotifier
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, notifier ports.CatalogNotifier) *ProductUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &ProductUseCase{repo: repo, notifier: notifier}
}

// Create crea un producto. Si no viene precio pero sí un margen numérico, el precio se deriva del costo.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Quantity == nil || *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	price := decimal.Zero
	switch {
	case in.Price != nil:
		price = *in.Price
	case in.Cost.IsPositive():
		if m, ok := pricing.ParseMargin(in.Margin); ok {
			price = pricing.ComputePrice(in.Cost, m)
		}
	}
	if price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Image:       in.Image,
		Quantity:    *in.Quantity,
		Cost:        in.Cost,
		Price:       price,
		MinStock:    minStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.notifier.CatalogChanged(ownerID)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del dueño; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza datos y precios. Un margen numérico sin precio explícito recalcula el precio.
func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Image != nil {
		product.Image = *in.Image
	}

	form := pricing.NewForm(product.Cost, product.Price)
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		form.SetCost(*in.Cost)
	}
	if in.Price != nil {
		form.SetPrice(*in.Price)
	} else if in.Margin != nil {
		form.SetMargin(*in.Margin)
	}
	if form.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product.Cost = form.Cost
	product.Price = form.Price

	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.notifier.CatalogChanged(ownerID)
	return toProductResponse(product), nil
}

// List lista productos del dueño con búsqueda y paginación.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Delete elimina un producto. Las ventas y compras que lo referencian conservan su foto.
func (uc *ProductUseCase) Delete(ctx context.Context, ownerID, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	uc.notifier.CatalogChanged(ownerID)
	return nil
}

// PricingPreview aplica una edición al formulario de precios y devuelve el estado resultante.
func (uc *ProductUseCase) PricingPreview(in dto.PricingPreviewRequest) (*dto.PricingPreviewResponse, error) {
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	form := pricing.NewForm(in.Cost, in.Price)
	switch in.Changed {
	case "cost":
		form.SetCost(in.Cost)
	case "price":
		form.SetPrice(in.Price)
	case "margin":
		form.SetMargin(in.Margin)
	default:
		return nil, domain.ErrInvalidInput
	}
	return &dto.PricingPreviewResponse{
		Cost:           form.Cost,
		Price:          form.Price,
		Margin:         form.MarginText,
		MarginEditable: form.MarginEditable(),
		NetProfit:      form.NetProfit(),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Quantity:    p.Quantity,
		Cost:        p.Cost,
		Price:       p.Price,
		Margin:      pricing.ComputeMargin(p.Cost, p.Price),
		NetProfit:   pricing.NetProfit(p.Cost, p.Price),
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
