package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
)

// ProductHandler maneja el catálogo de productos.
type ProductHandler struct {
	svc *inventory.Service
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *inventory.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar producto (idempotente)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntityRequest  true  "Nombre del producto"
// @Success      201   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" {
		return validation(c, "name es requerido")
	}
	p, err := h.svc.CreateProduct(in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
}

// Get godoc
// @Summary      Obtener producto por nombre
// @Tags         products
// @Produce      json
// @Param        name  path  string  true  "Nombre del producto"
// @Success      200   {object}  dto.EntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{name} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.svc.GetProduct(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProductResponse(p))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.EntityResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list := h.svc.ListProducts()
	out := make([]dto.EntityResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        name  path  string  true  "Nombre del producto"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{name} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.RemoveProduct(c.Params("name")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Relations godoc
// @Summary      Relaciones de un producto
// @Tags         products
// @Produce      json
// @Param        name  path  string  true  "Nombre del producto"
// @Success      200   {array}   dto.ProductLocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{name}/locations [get]
func (h *ProductHandler) Relations(c *fiber.Ctx) error {
	list, err := h.svc.ListByProduct(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRelationList(list))
}
