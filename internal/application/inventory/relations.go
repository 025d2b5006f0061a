package inventory

import (
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/registry"
)

// CreateProductLocation crea la relación (idempotente). Producto y ubicación deben existir.
func (s *Service) CreateProductLocation(productName, locationName string) (*registry.Relation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rel, err := s.relations.Create(productName, locationName)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("relation", rel.Key).Msg("relación registrada")
	return rel, nil
}

// GetProductLocation busca la relación por clave "producto@ubicacion".
func (s *Service) GetProductLocation(key string) (*registry.Relation, error) {
	return s.relations.GetByKey(key)
}

// ProductLocationExists indica si existe la relación.
func (s *Service) ProductLocationExists(productName, locationName string) bool {
	return s.relations.Exists(productName, locationName)
}

// RemoveProductLocation elimina la relación y descarta su ledger.
func (s *Service) RemoveProductLocation(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.relations.RemoveByKey(key) {
		return fmt.Errorf("relación %q: %w", key, domain.ErrNotFound)
	}
	s.log.Debug().Str("relation", key).Msg("relación eliminada")
	return nil
}

// ListProductLocations lista todas las relaciones en orden de inserción.
func (s *Service) ListProductLocations() []*registry.Relation {
	return s.relations.GetAll()
}

// ListByProduct lista las relaciones de un producto.
func (s *Service) ListByProduct(productName string) ([]*registry.Relation, error) {
	return s.relations.GetByProduct(productName)
}

// ListByLocation lista las relaciones de una ubicación.
func (s *Service) ListByLocation(locationName string) ([]*registry.Relation, error) {
	return s.relations.GetByLocation(locationName)
}
