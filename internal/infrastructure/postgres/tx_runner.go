package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepos agrupa los repositorios atados a una misma transacción.
type LedgerRepos struct {
	Snapshots *SnapshotMetaRepo
	Products  *ProductRepo
	Locations *LocationRepo
	Relations *ProductLocationRepo
	Changes   *InventoryChangeRepo
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos LedgerRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(newLedgerRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func newLedgerRepos(q Querier) LedgerRepos {
	return LedgerRepos{
		Snapshots: NewSnapshotMetaRepository(q),
		Products:  NewProductRepository(q),
		Locations: NewLocationRepository(q),
		Relations: NewProductLocationRepository(q),
		Changes:   NewInventoryChangeRepository(q),
	}
}
