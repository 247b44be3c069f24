package usecase

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// AdminUseCase consola de administración: perfiles y organizaciones de todos los dueños.
// La autorización se resuelve antes, en el middleware de rol.
type AdminUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, orgRepo: orgRepo}
}

// ListProfiles lista todos los perfiles.
func (uc *AdminUseCase) ListProfiles(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// ListOrganizations lista todas las organizaciones.
func (uc *AdminUseCase) ListOrganizations(ctx context.Context, limit, offset int) ([]dto.OrganizationResponse, error) {
	list, err := uc.orgRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *ToOrganizationResponse(o))
	}
	return out, nil
}

// SetRole cambia el rol de un perfil (admin ↔ user). Un administrador no puede quitarse el rol a sí mismo.
func (uc *AdminUseCase) SetRole(ctx context.Context, actorID, profileID string, in dto.SetRoleRequest) (*dto.UserResponse, error) {
	if !in.Confirm {
		return nil, domain.ErrConfirmationRequired
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if actorID == profileID && in.Role != entity.RoleAdmin {
		return nil, domain.ErrConflict
	}
	user, err := uc.userRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.userRepo.UpdateRole(ctx, profileID, in.Role); err != nil {
		return nil, err
	}
	user.Role = in.Role
	return ToUserResponse(user), nil
}

// ToUserResponse perfil sin datos sensibles.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
