package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
)

// PurchaseHandler compras a proveedores.
type PurchaseHandler struct {
	coord *purchasing.Coordinator
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(coord *purchasing.Coordinator) *PurchaseHandler {
	return &PurchaseHandler{coord: coord}
}

// Create godoc
// @Summary      Registrar compra
// @Description  Suma las unidades recibidas y actualiza el costo al último conocido.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Líneas recibidas"
// @Success      201   {object}  dto.PurchaseReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if len(in.Items) == 0 {
		return validation(c, "la compra debe tener al menos un producto")
	}
	out, err := h.coord.RecordPurchase(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err, "proveedor no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	r, ok := dateRange(c)
	if !ok {
		return validation(c, "from/to deben tener formato YYYY-MM-DD y from <= to")
	}
	limit, offset := pagination(c)
	out, err := h.coord.List(c.Context(), ownerID, r, limit, offset)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	out, err := h.coord.GetByID(c.Context(), ownerID, pathParam(c, "id"))
	if err != nil {
		return respondError(c, err, "compra no encontrada")
	}
	if out == nil {
		return notFound(c, "compra no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar compra
// @Description  Descuenta las unidades recibidas (sin bajar de 0); el costo no se revierte. Requiere confirm=true.
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true  "ID de la compra"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      200  {object}  dto.DeletePurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	out, err := h.coord.DeletePurchase(c.Context(), ownerID, pathParam(c, "id"), confirmed(c))
	if err != nil {
		return respondError(c, err, "compra no encontrada")
	}
	return c.JSON(out)
}
