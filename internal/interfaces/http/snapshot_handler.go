package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
)

// SnapshotHandler guarda y restaura el estado completo en el backend configurado.
type SnapshotHandler struct {
	svc *inventory.Service
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(svc *inventory.Service) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// Save godoc
// @Summary      Guardar snapshot
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SnapshotResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/snapshots [post]
func (h *SnapshotHandler) Save(c *fiber.Ctx) error {
	snap, err := h.svc.SaveSnapshot(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSnapshotResponse(snap))
}

// Restore godoc
// @Summary      Restaurar el último snapshot
// @Description  Reemplaza todo el estado en memoria.
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/snapshots/restore [post]
func (h *SnapshotHandler) Restore(c *fiber.Ctx) error {
	snap, err := h.svc.LoadSnapshot(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSnapshotResponse(snap))
}
