package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-stock/internal/application/catalog"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
)

// CatalogHandler vitrina pública (sin auth). Nunca expone costo, mínimo ni cantidad exacta.
type CatalogHandler struct {
	svc *catalog.Service
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Get godoc
// @Summary      Catálogo público de una tienda
// @Tags         public
// @Produce      json
// @Param        ownerID  path   string  true   "Dueño de la tienda"
// @Param        q        query  string  false  "Filtro por nombre o descripción"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/catalog/{ownerID} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return h.serve(c, pathParam(c, "ownerID"))
}

// GetDefault godoc
// @Summary      Catálogo público (modo tienda única)
// @Tags         public
// @Produce      json
// @Param        q  query  string  false  "Filtro por nombre o descripción"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/catalog [get]
func (h *CatalogHandler) GetDefault(c *fiber.Ctx) error {
	return h.serve(c, h.svc.DefaultOwnerID())
}

// OrderLink godoc
// @Summary      Enlace de pedido por WhatsApp
// @Description  Arma el carrito con los precios del catálogo. No se guarda ningún pedido.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        ownerID  path  string                true  "Dueño de la tienda"
// @Param        body     body  dto.OrderLinkRequest  true  "Carrito"
// @Success      200  {object}  dto.OrderLinkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/public/catalog/{ownerID}/order-link [post]
func (h *CatalogHandler) OrderLink(c *fiber.Ctx) error {
	return h.orderLink(c, pathParam(c, "ownerID"))
}

// OrderLinkDefault igual que OrderLink para la tienda única.
// POST /api/public/catalog/order-link
func (h *CatalogHandler) OrderLinkDefault(c *fiber.Ctx) error {
	return h.orderLink(c, h.svc.DefaultOwnerID())
}

func (h *CatalogHandler) serve(c *fiber.Ctx, ownerID string) error {
	out, err := h.svc.CatalogFor(c.Context(), ownerID, strings.TrimSpace(c.Query("q")))
	if err != nil {
		return respondError(c, err, "tienda no encontrada")
	}
	return c.JSON(out)
}

func (h *CatalogHandler) orderLink(c *fiber.Ctx, ownerID string) error {
	var in dto.OrderLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if len(in.Items) == 0 {
		return validation(c, "el carrito está vacío")
	}
	out, err := h.svc.OrderLink(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err, "tienda no encontrada")
	}
	return c.JSON(out)
}
