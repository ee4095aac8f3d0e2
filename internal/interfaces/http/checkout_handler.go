package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
)

// CheckoutHandler convierte el carrito del cliente en un pedido.
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Submit godoc
// @Summary      Confirmar pedido
// @Description  Descuenta stock de forma atómica, crea el pedido y vacía el carrito.
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Contacto, dirección y método de pago"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Submit(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
