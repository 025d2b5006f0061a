package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// LocationRepo tabla locations (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// DeleteAll vacía la tabla.
func (r *LocationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM locations`); err != nil {
		return fmt.Errorf("delete locations: %w", err)
	}
	return nil
}

// Insert persiste una ubicación.
func (r *LocationRepo) Insert(ctx context.Context, l entity.Location, position int) error {
	query := `
		INSERT INTO locations (id, name, created_at, position)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, l.ID, l.Name, l.CreatedAt, position)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ubicación %q duplicada: %w", l.Name, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// List devuelve las ubicaciones en el orden guardado.
func (r *LocationRepo) List(ctx context.Context) ([]entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM locations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	out := make([]entity.Location, 0)
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
