// Package redis guarda el snapshot del ledger como un documento JSON en una clave de Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/repository"
	"github.com/jhoicas/Scheduling-api/pkg/config"
)

// DefaultSnapshotKey clave usada si no se configura otra.
const DefaultSnapshotKey = "ledger:snapshot"

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

// SnapshotStore implementación del puerto SnapshotRepository sobre Redis (SET/GET de un JSON).
type SnapshotStore struct {
	client *redis.Client
	key    string
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewSnapshotStore construye el adaptador. key vacío usa DefaultSnapshotKey.
func NewSnapshotStore(client *redis.Client, key string) *SnapshotStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotStore{client: client, key: key}
}

// Save reemplaza el documento guardado.
func (s *SnapshotStore) Save(ctx context.Context, snap *entity.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", s.key, err)
	}
	return nil
}

// Load lee el documento; (nil, nil) si la clave no existe.
func (s *SnapshotStore) Load(ctx context.Context) (*entity.Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis GET %s: %w", s.key, err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("deserializar snapshot: %w", err)
	}
	return &snap, nil
}
