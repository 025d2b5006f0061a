// Package registry implementa el registro de relaciones producto@ubicacion, dueño de un ledger por relación.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
)

// EntityLookup es lo único que el registro necesita de los catálogos.
type EntityLookup interface {
	Exists(name string) bool
}

// Relation es una relación registrada junto con su ledger.
type Relation struct {
	entity.ProductLocation
	Ledger *ledger.Ledger
}

// Registry mantiene las relaciones únicas por clave en orden de inserción.
type Registry struct {
	mu        sync.RWMutex
	products  EntityLookup
	locations EntityLookup
	relations map[string]*Relation
	order     []string
}

// New construye el registro sobre los catálogos de productos y ubicaciones.
func New(products, locations EntityLookup) *Registry {
	return &Registry{
		products:  products,
		locations: locations,
		relations: make(map[string]*Relation),
	}
}

// Create exige que producto y ubicación existan (ErrNotFound si no). Es idempotente por clave;
// una relación nueva nace con un ledger vacío.
func (r *Registry) Create(productName, locationName string) (*Relation, error) {
	if productName == "" || locationName == "" {
		return nil, fmt.Errorf("producto y ubicación son requeridos: %w", domain.ErrInvalidInput)
	}
	if !r.products.Exists(productName) {
		return nil, fmt.Errorf("producto %q: %w", productName, domain.ErrNotFound)
	}
	if !r.locations.Exists(locationName) {
		return nil, fmt.Errorf("ubicación %q: %w", locationName, domain.ErrNotFound)
	}

	key := entity.RelationKey(productName, locationName)
	r.mu.Lock()
	defer r.mu.Unlock()
	if rel, ok := r.relations[key]; ok {
		return rel, nil
	}
	rel := &Relation{
		ProductLocation: entity.ProductLocation{
			ID:           uuid.New().String(),
			ProductName:  productName,
			LocationName: locationName,
			Key:          key,
			CreatedAt:    time.Now().UTC(),
		},
		Ledger: ledger.New(key),
	}
	r.relations[key] = rel
	r.order = append(r.order, key)
	return rel, nil
}

// Put registra una relación ya construida (restauración). Reemplaza la existente con la misma clave.
func (r *Registry) Put(rel *Relation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.relations[rel.Key]; !ok {
		r.order = append(r.order, rel.Key)
	}
	r.relations[rel.Key] = rel
}

// Get busca por nombres de producto y ubicación.
func (r *Registry) Get(productName, locationName string) (*Relation, error) {
	return r.GetByKey(entity.RelationKey(productName, locationName))
}

// GetByKey busca por la clave "producto@ubicacion".
func (r *Registry) GetByKey(key string) (*Relation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rel, ok := r.relations[key]
	if !ok {
		return nil, fmt.Errorf("relación %q: %w", key, domain.ErrNotFound)
	}
	return rel, nil
}

// Exists indica si la relación está registrada.
func (r *Registry) Exists(productName, locationName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.relations[entity.RelationKey(productName, locationName)]
	return ok
}

// Remove elimina la relación y descarta su ledger. Devuelve false si no existía.
func (r *Registry) Remove(productName, locationName string) bool {
	return r.RemoveByKey(entity.RelationKey(productName, locationName))
}

// RemoveByKey elimina por clave.
func (r *Registry) RemoveByKey(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.relations[key]; !ok {
		return false
	}
	delete(r.relations, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// GetAll devuelve todas las relaciones en orden de inserción.
func (r *Registry) GetAll() []*Relation {
	return r.filter(func(*Relation) bool { return true })
}

// GetByProduct filtra por producto. ErrNotFound si el producto no existe y no tiene relaciones.
func (r *Registry) GetByProduct(productName string) ([]*Relation, error) {
	list := r.filter(func(rel *Relation) bool { return rel.ProductName == productName })
	if len(list) == 0 && !r.products.Exists(productName) {
		return nil, fmt.Errorf("producto %q: %w", productName, domain.ErrNotFound)
	}
	return list, nil
}

// GetByLocation filtra por ubicación. ErrNotFound si la ubicación no existe y no tiene relaciones.
func (r *Registry) GetByLocation(locationName string) ([]*Relation, error) {
	list := r.filter(func(rel *Relation) bool { return rel.LocationName == locationName })
	if len(list) == 0 && !r.locations.Exists(locationName) {
		return nil, fmt.Errorf("ubicación %q: %w", locationName, domain.ErrNotFound)
	}
	return list, nil
}

// Len devuelve el número de relaciones.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.relations)
}

// Clear elimina todas las relaciones.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relations = make(map[string]*Relation)
	r.order = nil
}

func (r *Registry) filter(keep func(*Relation) bool) []*Relation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Relation, 0)
	for _, k := range r.order {
		if rel := r.relations[k]; keep(rel) {
			out = append(out, rel)
		}
	}
	return out
}
