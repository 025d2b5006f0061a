package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotMetaRepo tabla ledger_snapshots: una sola fila con el id y la fecha del último snapshot.
type SnapshotMetaRepo struct {
	q Querier
}

// NewSnapshotMetaRepository construye el adaptador.
func NewSnapshotMetaRepository(q Querier) *SnapshotMetaRepo {
	return &SnapshotMetaRepo{q: q}
}

// Replace deja como única fila la del snapshot dado.
func (r *SnapshotMetaRepo) Replace(ctx context.Context, id string, takenAt time.Time) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ledger_snapshots`); err != nil {
		return fmt.Errorf("delete ledger_snapshots: %w", err)
	}
	if _, err := r.q.Exec(ctx, `INSERT INTO ledger_snapshots (id, taken_at) VALUES ($1, $2)`, id, takenAt); err != nil {
		return fmt.Errorf("insert ledger_snapshot: %w", err)
	}
	return nil
}

// Get devuelve id y fecha del último snapshot; ok=false si no hay ninguno.
func (r *SnapshotMetaRepo) Get(ctx context.Context) (id string, takenAt time.Time, ok bool, err error) {
	err = r.q.QueryRow(ctx, `SELECT id, taken_at FROM ledger_snapshots LIMIT 1`).Scan(&id, &takenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, false, nil
		}
		return "", time.Time{}, false, fmt.Errorf("get ledger_snapshot: %w", err)
	}
	return id, takenAt.UTC(), true, nil
}

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL.
// Save reemplaza todas las filas dentro de una transacción.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotRepository construye el adaptador de snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, tx: NewTxRunner(pool)}
}

// Save persiste el snapshot completo (todo o nada).
func (r *SnapshotRepo) Save(ctx context.Context, s *entity.Snapshot) error {
	return r.tx.Run(ctx, func(repos LedgerRepos) error {
		if err := repos.Relations.DeleteAll(ctx); err != nil {
			return err
		}
		if err := repos.Products.DeleteAll(ctx); err != nil {
			return err
		}
		if err := repos.Locations.DeleteAll(ctx); err != nil {
			return err
		}
		for i, p := range s.Products {
			if err := repos.Products.Insert(ctx, p, i); err != nil {
				return err
			}
		}
		for i, l := range s.Locations {
			if err := repos.Locations.Insert(ctx, l, i); err != nil {
				return err
			}
		}
		for i, rs := range s.Relations {
			if err := repos.Relations.Insert(ctx, rs.Relation, i); err != nil {
				return err
			}
			if err := repos.Changes.CopyAll(ctx, rs.Relation.Key, rs.Changes); err != nil {
				return err
			}
		}
		return repos.Snapshots.Replace(ctx, s.ID, s.TakenAt)
	})
}

// Load reconstruye el último snapshot en una tx de solo lectura. (nil, nil) si nunca se guardó uno.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := newLedgerRepos(tx)
	id, takenAt, ok, err := repos.Snapshots.Get(ctx)
	if err != nil || !ok {
		return nil, err
	}
	products, err := repos.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := repos.Locations.List(ctx)
	if err != nil {
		return nil, err
	}
	relations, err := repos.Relations.List(ctx)
	if err != nil {
		return nil, err
	}
	changes, err := repos.Changes.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s := &entity.Snapshot{
		ID:        id,
		TakenAt:   takenAt,
		Products:  products,
		Locations: locations,
		Relations: make([]entity.RelationSnapshot, 0, len(relations)),
	}
	for _, pl := range relations {
		entries := changes[pl.Key]
		if entries == nil {
			entries = []entity.InventoryChange{}
		}
		s.Relations = append(s.Relations, entity.RelationSnapshot{Relation: pl, Changes: entries})
	}
	return s, nil
}
