package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
)

// AdminHandler consola de administración. Todas las rutas van detrás de RequireAdmin.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListProfiles godoc
// @Summary      Listar perfiles
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.UserResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/admin/profiles [get]
func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListProfiles(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// ListOrganizations godoc
// @Summary      Listar organizaciones
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.OrganizationResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/admin/organizations [get]
func (h *AdminHandler) ListOrganizations(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListOrganizations(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// SetRole godoc
// @Summary      Cambiar rol de un perfil (admin ↔ user)
// @Description  Requiere confirm=true (query o body). Un administrador no puede quitarse el rol a sí mismo.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del perfil"
// @Param        body  body  dto.SetRoleRequest  true  "Nuevo rol"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      428   {object}  dto.ErrorResponse
// @Router       /api/admin/profiles/{id}/role [put]
func (h *AdminHandler) SetRole(c *fiber.Ctx) error {
	var in dto.SetRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.Confirm = in.Confirm || confirmed(c)
	out, err := h.uc.SetRole(c.Context(), GetUserID(c), pathParam(c, "id"), in)
	if err != nil {
		return respondError(c, err, "perfil no encontrado")
	}
	return c.JSON(out)
}
