package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Scheduling-api/internal/infrastructure/persistence"
	"github.com/jhoicas/Scheduling-api/pkg/config"
	"github.com/jhoicas/Scheduling-api/pkg/logger"
)

func TestOpenSnapshots_SinBackend(t *testing.T) {
	cfg := &config.Config{Ledger: config.LedgerConfig{SnapshotBackend: config.SnapshotBackendNone}}
	repo, closeFn, err := persistence.OpenSnapshots(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, repo)
	require.NotNil(t, closeFn)
	closeFn()
}

func TestOpenSnapshots_RedisInalcanzable(t *testing.T) {
	cfg := &config.Config{
		Ledger: config.LedgerConfig{SnapshotBackend: config.SnapshotBackendRedis},
		Redis:  config.RedisConfig{Addr: "127.0.0.1:1"},
	}
	repo, closeFn, err := persistence.OpenSnapshots(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
	assert.Nil(t, repo)
	closeFn()
}
