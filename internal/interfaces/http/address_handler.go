package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
)

// AddressHandler administra las direcciones guardadas del cliente autenticado.
type AddressHandler struct {
	uc *usecase.AddressUseCase
}

// NewAddressHandler construye el handler.
func NewAddressHandler(uc *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Create godoc
// @Summary      Guardar dirección
// @Tags         direcciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAddressRequest  true  "Etiqueta, línea y ciudad"
// @Success      201   {object}  dto.AddressResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/direcciones [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAddressRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar direcciones del cliente
// @Tags         direcciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AddressResponse
// @Router       /api/direcciones [get]
func (h *AddressHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dirección
// @Tags         direcciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la dirección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/direcciones/{id} [delete]
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Select godoc
// @Summary      Seleccionar dirección para el próximo checkout
// @Tags         direcciones
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.SelectAddressRequest  true  "ID de la dirección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/direcciones/seleccion [put]
func (h *AddressHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectAddressRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.Select(c.Context(), GetUserID(c), in.AddressID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
