package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
)

// ProviderHandler administra los proveedores de la tienda.
type ProviderHandler struct {
	uc *usecase.ProviderUseCase
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProviderRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProviderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.ProviderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "activo | inactivo"
// @Success      200     {array}  dto.ProviderResponse
// @Router       /api/proveedores [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateProviderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProviderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProviderRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Activar o inactivar proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateStatusRequest  true  "activo | inactivo"
// @Success      200   {object}  dto.ProviderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id}/estado [patch]
func (h *ProviderHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}
