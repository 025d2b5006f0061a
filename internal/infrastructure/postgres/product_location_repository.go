package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// ProductLocationRepo tabla product_locations.
type ProductLocationRepo struct {
	q Querier
}

// NewProductLocationRepository construye el adaptador de persistencia para relaciones.
func NewProductLocationRepository(q Querier) *ProductLocationRepo {
	return &ProductLocationRepo{q: q}
}

// DeleteAll vacía la tabla; inventory_changes cae por ON DELETE CASCADE.
func (r *ProductLocationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_locations`); err != nil {
		return fmt.Errorf("delete product_locations: %w", err)
	}
	return nil
}

// Insert persiste una relación.
func (r *ProductLocationRepo) Insert(ctx context.Context, pl entity.ProductLocation, position int) error {
	query := `
		INSERT INTO product_locations (id, relation_key, product_name, location_name, created_at, position)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, pl.ID, pl.Key, pl.ProductName, pl.LocationName, pl.CreatedAt, position)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("relación %q duplicada: %w", pl.Key, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert product_location: %w", err)
	}
	return nil
}

// List devuelve las relaciones en el orden guardado.
func (r *ProductLocationRepo) List(ctx context.Context) ([]entity.ProductLocation, error) {
	query := `
		SELECT id, relation_key, product_name, location_name, created_at
		FROM product_locations ORDER BY position`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product_locations: %w", err)
	}
	defer rows.Close()
	out := make([]entity.ProductLocation, 0)
	for rows.Next() {
		var pl entity.ProductLocation
		if err := rows.Scan(&pl.ID, &pl.Key, &pl.ProductName, &pl.LocationName, &pl.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product_location: %w", err)
		}
		out = append(out, pl)
	}
	return out, rows.Err()
}
