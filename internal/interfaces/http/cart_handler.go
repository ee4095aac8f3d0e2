package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/application/dto"
)

// CartHandler maneja el carrito del cliente autenticado.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Add(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "Cantidad deseada"
// @Success      200        {object}  dto.CartResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/carrito/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateQuantity(c.Context(), GetUserID(c), c.Params("productId"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar producto del carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/carrito/{productId} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.Context(), GetUserID(c), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Security     Bearer
// @Success      204
// @Router       /api/carrito [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
