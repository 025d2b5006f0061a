package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
)

// ProductLocationHandler maneja el registro de relaciones producto@ubicacion.
type ProductLocationHandler struct {
	svc *inventory.Service
}

// NewProductLocationHandler construye el handler.
func NewProductLocationHandler(svc *inventory.Service) *ProductLocationHandler {
	return &ProductLocationHandler{svc: svc}
}

// Create godoc
// @Summary      Crear relación producto@ubicacion (idempotente)
// @Description  Producto y ubicación deben existir.
// @Tags         product-locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductLocationRequest  true  "product, location"
// @Success      201   {object}  dto.ProductLocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-locations [post]
func (h *ProductLocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Product == "" || in.Location == "" {
		return validation(c, "product y location son requeridos")
	}
	rel, err := h.svc.CreateProductLocation(in.Product, in.Location)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRelationResponse(rel))
}

// Get godoc
// @Summary      Obtener relación por clave
// @Tags         product-locations
// @Produce      json
// @Param        key  path  string  true  "producto@ubicacion"
// @Success      200  {object}  dto.ProductLocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key} [get]
func (h *ProductLocationHandler) Get(c *fiber.Ctx) error {
	rel, err := h.svc.GetProductLocation(c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRelationResponse(rel))
}

// List godoc
// @Summary      Listar relaciones
// @Tags         product-locations
// @Produce      json
// @Success      200  {array}  dto.ProductLocationResponse
// @Router       /api/product-locations [get]
func (h *ProductLocationHandler) List(c *fiber.Ctx) error {
	return c.JSON(toRelationList(h.svc.ListProductLocations()))
}

// Delete godoc
// @Summary      Eliminar relación y su ledger
// @Tags         product-locations
// @Security     Bearer
// @Param        key  path  string  true  "producto@ubicacion"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key} [delete]
func (h *ProductLocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.RemoveProductLocation(c.Params("key")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
