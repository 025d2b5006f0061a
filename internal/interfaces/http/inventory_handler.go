package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
)

// InventoryHandler maneja escrituras y consultas sobre el ledger de una relación.
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Add godoc
// @Summary      Agregar inventario (acumula en el instante)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        key   path  string                      true  "producto@ubicacion"
// @Param        body  body  dto.InventoryChangeRequest  true  "timestamp, quantity"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/add [post]
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	return h.write(c, ledger.OpAdd)
}

// Remove godoc
// @Summary      Retirar inventario (acumula negativo en el instante)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        key   path  string                      true  "producto@ubicacion"
// @Param        body  body  dto.InventoryChangeRequest  true  "timestamp, quantity"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/remove [post]
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	return h.write(c, ledger.OpRemove)
}

// Update godoc
// @Summary      Fijar el cambio neto del instante (sobrescribe)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        key   path  string                      true  "producto@ubicacion"
// @Param        body  body  dto.InventoryChangeRequest  true  "timestamp, quantity"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/update [post]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	return h.write(c, ledger.OpUpdate)
}

func (h *InventoryHandler) write(c *fiber.Ctx, kind string) error {
	var in dto.InventoryChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Timestamp.IsZero() {
		return validation(c, "timestamp es requerido")
	}
	key := c.Params("key")
	var err error
	switch kind {
	case ledger.OpAdd:
		err = h.svc.AddInventory(key, in.Timestamp, in.Quantity)
	case ledger.OpRemove:
		err = h.svc.RemoveInventory(key, in.Timestamp, in.Quantity)
	default:
		err = h.svc.UpdateInventory(key, in.Timestamp, in.Quantity)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Apply godoc
// @Summary      Aplicar lote de cambios (todo o nada)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path  string                  true  "producto@ubicacion"
// @Param        body  body  dto.BulkChangesRequest  true  "changes: [{op, timestamp, quantity}]"
// @Success      200   {object}  dto.LedgerSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/changes [post]
func (h *InventoryHandler) Apply(c *fiber.Ctx) error {
	var in dto.BulkChangesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if len(in.Changes) == 0 {
		return validation(c, "changes no puede estar vacío")
	}
	ops := make([]ledger.Operation, 0, len(in.Changes))
	for _, ch := range in.Changes {
		ops = append(ops, ledger.Operation{Kind: ch.Op, Timestamp: ch.Timestamp, Quantity: ch.Quantity})
	}
	key := c.Params("key")
	if err := h.svc.ApplyChanges(key, ops); err != nil {
		return writeError(c, err)
	}
	sum, err := h.svc.Summary(key)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSummaryResponse(sum))
}

// Changes godoc
// @Summary      Listar cambios (todos o en rango inclusivo)
// @Tags         inventory
// @Produce      json
// @Param        key   path   string  true   "producto@ubicacion"
// @Param        from  query  string  false  "inicio (RFC3339 o ms Unix)"
// @Param        to    query  string  false  "fin (RFC3339 o ms Unix)"
// @Success      200   {object}  dto.InventoryChangesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/changes [get]
func (h *InventoryHandler) Changes(c *fiber.Ctx) error {
	key := c.Params("key")
	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw == "" && toRaw == "" {
		all, err := h.svc.GetAllInventoryChanges(key)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(toChangesResponse(key, all))
	}
	from, ok := parseTimestamp(fromRaw)
	if !ok {
		return validation(c, "from y to son requeridos juntos (RFC3339 o ms Unix)")
	}
	to, ok := parseTimestamp(toRaw)
	if !ok {
		return validation(c, "from y to son requeridos juntos (RFC3339 o ms Unix)")
	}
	list, err := h.svc.GetInventoryChangesInRange(key, from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toChangesResponse(key, list))
}

// ChangeAt godoc
// @Summary      Cambio neto exacto en un instante (0 si no hay entrada)
// @Tags         inventory
// @Produce      json
// @Param        key  path   string  true  "producto@ubicacion"
// @Param        at   query  string  true  "instante (RFC3339 o ms Unix)"
// @Success      200  {object}  dto.QuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/change [get]
func (h *InventoryHandler) ChangeAt(c *fiber.Ctx) error {
	at, ok := parseTimestamp(c.Query("at"))
	if !ok {
		return validation(c, "at es requerido (RFC3339 o ms Unix)")
	}
	key := c.Params("key")
	q, err := h.svc.GetInventoryChangeAtTime(key, at)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.QuantityResponse{Key: key, Timestamp: ledger.Normalize(at), Quantity: q})
}

// Cumulative godoc
// @Summary      Inventario acumulado hasta un instante (inclusivo)
// @Tags         inventory
// @Produce      json
// @Param        key  path   string  true  "producto@ubicacion"
// @Param        at   query  string  true  "instante (RFC3339 o ms Unix)"
// @Success      200  {object}  dto.QuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/cumulative [get]
func (h *InventoryHandler) Cumulative(c *fiber.Ctx) error {
	at, ok := parseTimestamp(c.Query("at"))
	if !ok {
		return validation(c, "at es requerido (RFC3339 o ms Unix)")
	}
	key := c.Params("key")
	q, err := h.svc.GetCumulativeInventory(key, at)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.QuantityResponse{Key: key, Timestamp: ledger.Normalize(at), Quantity: q})
}

// Summary godoc
// @Summary      Resumen del ledger
// @Tags         inventory
// @Produce      json
// @Param        key  path  string  true  "producto@ubicacion"
// @Success      200  {object}  dto.LedgerSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-locations/{key}/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.svc.Summary(c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSummaryResponse(sum))
}
