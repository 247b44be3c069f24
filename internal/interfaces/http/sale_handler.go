package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/sales"
)

// SaleHandler punto de venta: registrar, listar, anular y comprobante PDF.
type SaleHandler struct {
	coord *sales.Coordinator
}

// NewSaleHandler construye el handler.
func NewSaleHandler(coord *sales.Coordinator) *SaleHandler {
	return &SaleHandler{coord: coord}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Guarda la foto de cada línea y descuenta stock de los productos existentes.
// @Description  stock.status es "partial" si alguna línea no movió stock.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas del carrito"
// @Success      201   {object}  dto.SaleReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if len(in.Items) == 0 {
		return validation(c, "la venta debe tener al menos un producto")
	}
	out, err := h.coord.RecordSale(c.Context(), ownerID, in)
	if err != nil {
		return respondError(c, err, "venta no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	out, err := h.coord.GetByID(c.Context(), ownerID, pathParam(c, "id"))
	if err != nil {
		return respondError(c, err, "venta no encontrada")
	}
	if out == nil {
		return notFound(c, "venta no encontrada")
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	pdf, filename, err := h.coord.Receipt(c.Context(), ownerID, pathParam(c, "id"))
	if err != nil {
		return respondError(c, err, "venta no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdf)
}

// Void godoc
// @Summary      Anular venta
// @Description  Devuelve al stock las unidades de los productos que aún existen y elimina la venta.
// @Description  Requiere confirm=true.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true  "ID de la venta"
// @Param        confirm  query  bool    true  "Confirmación explícita"
// @Success      200  {object}  dto.VoidSaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Void(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return unauthorized(c)
	}
	out, err := h.coord.VoidSale(c.Context(), ownerID, pathParam(c, "id"), confirmed(c))
	if err != nil {
		return respondError(c, err, "venta no encontrada")
	}
	return c.JSON(out)
}
