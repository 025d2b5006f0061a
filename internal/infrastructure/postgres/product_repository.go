package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// ProductRepo tabla products (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// DeleteAll vacía la tabla.
func (r *ProductRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	return nil
}

// Insert persiste un producto; position conserva el orden de inserción del catálogo.
func (r *ProductRepo) Insert(ctx context.Context, p entity.Product, position int) error {
	query := `
		INSERT INTO products (id, name, created_at, position)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.CreatedAt, position)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("producto %q duplicado: %w", p.Name, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List devuelve los productos en el orden guardado.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	out := make([]entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
