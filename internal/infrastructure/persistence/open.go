// Package persistence elige el backend de snapshots según LEDGER_SNAPSHOT_BACKEND.
package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain/repository"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Scheduling-api/internal/infrastructure/redis"
	"github.com/jhoicas/Scheduling-api/pkg/config"
	"github.com/jhoicas/Scheduling-api/pkg/logger"
)

// OpenSnapshots abre el backend configurado. Con "none" devuelve un repositorio nil.
// La función devuelta libera conexiones y siempre es seguro llamarla.
func OpenSnapshots(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SnapshotRepository, func(), error) {
	noop := func() {}
	switch cfg.Ledger.SnapshotBackend {
	case config.SnapshotBackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info().Str("backend", config.SnapshotBackendPostgres).Msg("snapshots habilitados")
		return postgres.NewSnapshotRepository(pool), pool.Close, nil
	case config.SnapshotBackendRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a Redis: %w", err)
		}
		log.Info().Str("backend", config.SnapshotBackendRedis).Str("key", cfg.Redis.Key).Msg("snapshots habilitados")
		return infraredis.NewSnapshotStore(client, cfg.Redis.Key), func() { _ = client.Close() }, nil
	default:
		log.Info().Msg("snapshots deshabilitados")
		return nil, noop, nil
	}
}
