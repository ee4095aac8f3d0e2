package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/dto"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
	"github.com/lacigarreria/tienda-api/internal/domain/repository"
)

// SaleHandler maneja las ventas de mostrador del cajero.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock de cada línea en una sola transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Documento, método de pago y líneas"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "activo | inactivo"
// @Param        doc     query  string  false  "Subcadena del número de documento"
// @Param        fecha   query  string  false  "Fecha de la venta (YYYY-MM-DD)"
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), repository.SaleFilter{
		Status:   c.Query("status"),
		Document: c.Query("doc"),
		Date:     c.Query("fecha"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Activar o inactivar venta
// @Description  Inactivar una venta restaura el stock de sus líneas.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateStatusRequest  true  "activo | inactivo"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/estado [patch]
func (h *SaleHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}
