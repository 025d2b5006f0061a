package inventory

import (
	"fmt"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// CreateProduct registra el producto o devuelve el existente.
func (s *Service) CreateProduct(name string) (*entity.Product, error) {
	p, err := s.products.Create(name)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("product", name).Msg("producto registrado")
	return p, nil
}

// GetProduct obtiene un producto por nombre.
func (s *Service) GetProduct(name string) (*entity.Product, error) {
	return s.products.Get(name)
}

// ProductExists indica si el producto está registrado.
func (s *Service) ProductExists(name string) bool {
	return s.products.Exists(name)
}

// ListProducts lista los productos en orden de inserción.
func (s *Service) ListProducts() []*entity.Product {
	return s.products.GetAll()
}

// RemoveProduct elimina el producto. Sin cascada, sus relaciones siguen registradas.
func (s *Service) RemoveProduct(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.products.Remove(name) {
		return fmt.Errorf("producto %q: %w", name, domain.ErrNotFound)
	}
	removed := 0
	if s.cascadeRemove {
		list, _ := s.relations.GetByProduct(name)
		for _, rel := range list {
			if s.relations.RemoveByKey(rel.Key) {
				removed++
			}
		}
	}
	s.log.Debug().Str("product", name).Int("relations_removed", removed).Msg("producto eliminado")
	return nil
}

// CreateLocation registra la ubicación o devuelve la existente.
func (s *Service) CreateLocation(name string) (*entity.Location, error) {
	l, err := s.locations.Create(name)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("location", name).Msg("ubicación registrada")
	return l, nil
}

// GetLocation obtiene una ubicación por nombre.
func (s *Service) GetLocation(name string) (*entity.Location, error) {
	return s.locations.Get(name)
}

// LocationExists indica si la ubicación está registrada.
func (s *Service) LocationExists(name string) bool {
	return s.locations.Exists(name)
}

// ListLocations lista las ubicaciones en orden de inserción.
func (s *Service) ListLocations() []*entity.Location {
	return s.locations.GetAll()
}

// RemoveLocation elimina la ubicación. Sin cascada, sus relaciones siguen registradas.
func (s *Service) RemoveLocation(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.locations.Remove(name) {
		return fmt.Errorf("ubicación %q: %w", name, domain.ErrNotFound)
	}
	removed := 0
	if s.cascadeRemove {
		list, _ := s.relations.GetByLocation(name)
		for _, rel := range list {
			if s.relations.RemoveByKey(rel.Key) {
				removed++
			}
		}
	}
	s.log.Debug().Str("location", name).Int("relations_removed", removed).Msg("ubicación eliminada")
	return nil
}
