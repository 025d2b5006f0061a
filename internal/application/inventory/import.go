package inventory

import (
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
)

// ImportRow una operación importada sobre producto@ubicacion.
type ImportRow struct {
	Line     int
	Product  string
	Location string
	Op       ledger.Operation
}

// ImportStats resultado de Import.
type ImportStats struct {
	Rows      int
	Products  int
	Locations int
	Relations int
}

// Import registra productos, ubicaciones y relaciones faltantes y aplica las operaciones en orden.
// Todas las filas se validan antes de tocar el estado: si una falla no se aplica ninguna.
func (s *Service) Import(rows []ImportRow) (ImportStats, error) {
	var stats ImportStats
	order := make([]string, 0)
	byKey := make(map[string][]ledger.Operation)
	pairs := make(map[string][2]string)

	for _, r := range rows {
		if r.Product == "" || r.Location == "" {
			return stats, fmt.Errorf("línea %d: producto y ubicación son requeridos: %w", r.Line, domain.ErrInvalidInput)
		}
		key := entity.RelationKey(r.Product, r.Location)
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
			pairs[key] = [2]string{r.Product, r.Location}
		}
		byKey[key] = append(byKey[key], r.Op)
		if err := ledger.New(key).Apply([]ledger.Operation{r.Op}); err != nil {
			return stats, fmt.Errorf("línea %d: %w", r.Line, err)
		}
	}

	for _, key := range order {
		p, l := pairs[key][0], pairs[key][1]
		if !s.ProductExists(p) {
			if _, err := s.CreateProduct(p); err != nil {
				return stats, err
			}
			stats.Products++
		}
		if !s.LocationExists(l) {
			if _, err := s.CreateLocation(l); err != nil {
				return stats, err
			}
			stats.Locations++
		}
		if !s.ProductLocationExists(p, l) {
			stats.Relations++
		}
		if _, err := s.CreateProductLocation(p, l); err != nil {
			return stats, err
		}
		if err := s.ApplyChanges(key, byKey[key]); err != nil {
			return stats, err
		}
		stats.Rows += len(byKey[key])
	}
	s.log.Info().
		Int("rows", stats.Rows).
		Int("products", stats.Products).
		Int("locations", stats.Locations).
		Int("relations", stats.Relations).
		Msg("importación aplicada")
	return stats, nil
}
