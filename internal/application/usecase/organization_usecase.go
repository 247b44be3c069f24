package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/ports"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// OrganizationUseCase datos de la tienda de cada dueño.
type OrganizationUseCase struct {
	repo     repository.OrganizationRepository
	notifier ports.CatalogNotifier
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(repo repository.OrganizationRepository, notifier ports.CatalogNotifier) *OrganizationUseCase {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &OrganizationUseCase{repo: repo, notifier: notifier}
}

// GetOrCreate devuelve la organización del dueño; si no existe crea "Mi Empresa".
func (uc *OrganizationUseCase) GetOrCreate(ctx context.Context, ownerID string) (*dto.OrganizationResponse, error) {
	org, err := uc.getOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ToOrganizationResponse(org), nil
}

func (uc *OrganizationUseCase) getOrCreate(ctx context.Context, ownerID string) (*entity.Organization, error) {
	org, err := uc.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if org != nil {
		return org, nil
	}
	now := time.Now()
	org = &entity.Organization{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      entity.DefaultOrganizationName,
		Color:     entity.DefaultOrganizationColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, org); err != nil {
		// otra petición la creó primero
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.repo.GetByOwner(ctx, ownerID)
		}
		return nil, err
	}
	return org, nil
}

// Update modifica nombre, logo, color o WhatsApp de la tienda.
func (uc *OrganizationUseCase) Update(ctx context.Context, ownerID string, in dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.getOrCreate(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		org.Name = name
	}
	if in.LogoURL != nil {
		org.LogoURL = *in.LogoURL
	}
	if in.Color != nil {
		org.Color = *in.Color
		if org.Color == "" {
			org.Color = entity.DefaultOrganizationColor
		}
	}
	if in.WhatsAppPhone != nil {
		org.WhatsAppPhone = *in.WhatsAppPhone
	}
	org.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	uc.notifier.CatalogChanged(ownerID)
	return ToOrganizationResponse(org), nil
}

// ToOrganizationResponse convierte la entidad en su salida HTTP.
func ToOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:            o.ID,
		OwnerID:       o.OwnerID,
		Name:          o.Name,
		LogoURL:       o.LogoURL,
		Color:         o.Color,
		WhatsAppPhone: o.WhatsAppPhone,
		CreatedAt:     o.CreatedAt,
	}
}
