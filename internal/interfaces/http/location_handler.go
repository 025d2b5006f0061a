package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
)

// LocationHandler maneja el catálogo de ubicaciones.
type LocationHandler struct {
	svc *inventory.Service
}

// NewLocationHandler construye el handler.
func NewLocationHandler(svc *inventory.Service) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar ubicación (idempotente)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntityRequest  true  "Nombre de la ubicación"
// @Success      201   {object}  dto.EntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Name == "" {
		return validation(c, "name es requerido")
	}
	l, err := h.svc.CreateLocation(in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLocationResponse(l))
}

// Get godoc
// @Summary      Obtener ubicación por nombre
// @Tags         locations
// @Produce      json
// @Param        name  path  string  true  "Nombre de la ubicación"
// @Success      200   {object}  dto.EntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{name} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	l, err := h.svc.GetLocation(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toLocationResponse(l))
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {array}  dto.EntityResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	list := h.svc.ListLocations()
	out := make([]dto.EntityResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLocationResponse(l))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ubicación
// @Tags         locations
// @Security     Bearer
// @Param        name  path  string  true  "Nombre de la ubicación"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{name} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.RemoveLocation(c.Params("name")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Relations godoc
// @Summary      Relaciones de una ubicación
// @Tags         locations
// @Produce      json
// @Param        name  path  string  true  "Nombre de la ubicación"
// @Success      200   {array}   dto.ProductLocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{name}/products [get]
func (h *LocationHandler) Relations(c *fiber.Ctx) error {
	list, err := h.svc.ListByLocation(c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRelationList(list))
}
