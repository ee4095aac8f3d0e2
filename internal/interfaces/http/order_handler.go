package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/application/orders"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// OrderHandler maneja el ciclo de vida de los pedidos según el rol.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Description  El cliente ve los suyos, el domiciliario los asignados, cajero y admin todos.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "pendiente | entregado | cancelado"
// @Param        q       query  string  false  "Subcadena del nombre del comprador"
// @Param        fecha   query  string  false  "Fecha de creación (YYYY-MM-DD)"
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), GetRole(c), repository.OrderFilter{
		OrderStatus: c.Query("estado"),
		Query:       c.Query("q"),
		Date:        c.Query("fecha"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssignCourier godoc
// @Summary      Asignar domiciliario
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.AssignCourierRequest  true  "ID del domiciliario"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/asignar [patch]
func (h *OrderHandler) AssignCourier(c *fiber.Ctx) error {
	var in dto.AssignCourierRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.AssignCourier(c.Context(), c.Params("id"), in.CourierID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkDelivered godoc
// @Summary      Marcar pedido entregado
// @Description  Idempotente: repetir sobre un pedido entregado devuelve el mismo estado.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/entregar [patch]
func (h *OrderHandler) MarkDelivered(c *fiber.Ctx) error {
	out, err := h.uc.MarkDelivered(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar pedido
// @Description  Restaura el stock de las líneas. Idempotente sobre pedidos ya cancelados.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/cancelar [patch]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetRecordStatus godoc
// @Summary      Activar o inactivar el registro del pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateStatusRequest  true  "activo | inactivo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado-registro [patch]
func (h *OrderHandler) SetRecordStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.SetRecordStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/pdf [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
