package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// InventoryChangeRepo tabla inventory_changes. El instante se guarda como milisegundos Unix (ts_ms),
// que es la misma clave que usa el ledger en memoria.
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador de persistencia para entradas del ledger.
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// CopyAll inserta todas las entradas de una relación con COPY.
func (r *InventoryChangeRepo) CopyAll(ctx context.Context, relationKey string, changes []entity.InventoryChange) error {
	if len(changes) == 0 {
		return nil
	}
	n, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"inventory_changes"},
		[]string{"relation_key", "ts_ms", "net_change"},
		pgx.CopyFromSlice(len(changes), func(i int) ([]any, error) {
			return []any{relationKey, changes[i].Timestamp.UnixMilli(), changes[i].NetChange}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy inventory_changes %q: %w", relationKey, err)
	}
	if int(n) != len(changes) {
		return fmt.Errorf("copy inventory_changes %q: %d de %d filas", relationKey, n, len(changes))
	}
	return nil
}

// ListAll devuelve las entradas agrupadas por relación, cada grupo en orden ascendente.
func (r *InventoryChangeRepo) ListAll(ctx context.Context) (map[string][]entity.InventoryChange, error) {
	rows, err := r.q.Query(ctx, `SELECT relation_key, ts_ms, net_change FROM inventory_changes ORDER BY relation_key, ts_ms`)
	if err != nil {
		return nil, fmt.Errorf("list inventory_changes: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.InventoryChange)
	for rows.Next() {
		var (
			key string
			ms  int64
			net decimal.Decimal
		)
		if err := rows.Scan(&key, &ms, &net); err != nil {
			return nil, fmt.Errorf("scan inventory_change: %w", err)
		}
		out[key] = append(out[key], entity.InventoryChange{Timestamp: time.UnixMilli(ms).UTC(), NetChange: net})
	}
	return out, rows.Err()
}
