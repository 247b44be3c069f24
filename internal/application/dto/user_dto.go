package dto

import "time"

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// UserResponse perfil de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT. El rol ya viaja dentro del token.
type LoginResponse struct {
	Token        string               `json:"token"`
	User         UserResponse         `json:"user"`
	Organization OrganizationResponse `json:"organization"`
}

// SetRoleRequest body para PUT /api/admin/profiles/:id/role.
type SetRoleRequest struct {
	Role    string `json:"role" validate:"required,oneof=admin user"`
	Confirm bool   `json:"confirm"`
}
