package repository

import (
	"context"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// SnapshotRepository define el puerto de persistencia de snapshots del ledger (DIP).
// Load devuelve (nil, nil) cuando todavía no hay ningún snapshot guardado.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Load(ctx context.Context) (*entity.Snapshot, error)
}
