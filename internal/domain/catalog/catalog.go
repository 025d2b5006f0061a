// Package catalog implementa el registro de entidades con nombre único (productos y ubicaciones).
package catalog

import (
	"fmt"
	"sync"

	"github.com/jhoicas/Scheduling-api/internal/domain"
)

// Catalog es un registro genérico indexado por nombre. Create es idempotente: si el nombre
// existe devuelve la misma instancia. GetAll conserva el orden de inserción.
type Catalog[E any] struct {
	mu      sync.RWMutex
	kind    string
	factory func(name string) *E
	items   map[string]*E
	order   []string
}

// New construye un catálogo. kind se usa en los mensajes de error ("producto", "ubicación").
func New[E any](kind string, factory func(name string) *E) *Catalog[E] {
	return &Catalog[E]{
		kind:    kind,
		factory: factory,
		items:   make(map[string]*E),
	}
}

// Create registra la entidad o devuelve la existente.
func (c *Catalog[E]) Create(name string) (*E, error) {
	if name == "" {
		return nil, fmt.Errorf("%s sin nombre: %w", c.kind, domain.ErrInvalidInput)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[name]; ok {
		return e, nil
	}
	e := c.factory(name)
	c.items[name] = e
	c.order = append(c.order, name)
	return e, nil
}

// Put registra una instancia ya construida (restauración de snapshots). Reemplaza si existe.
func (c *Catalog[E]) Put(name string, e *E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[name]; !ok {
		c.order = append(c.order, name)
	}
	c.items[name] = e
}

// Get devuelve la entidad o ErrNotFound.
func (c *Catalog[E]) Get(name string) (*E, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[name]
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", c.kind, name, domain.ErrNotFound)
	}
	return e, nil
}

// Exists indica si el nombre está registrado.
func (c *Catalog[E]) Exists(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[name]
	return ok
}

// Remove elimina la entidad; devuelve false si no existía.
func (c *Catalog[E]) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[name]; !ok {
		return false
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// GetAll devuelve las entidades en orden de inserción.
func (c *Catalog[E]) GetAll() []*E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*E, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.items[n])
	}
	return out
}

// Len devuelve el número de entidades registradas.
func (c *Catalog[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear vacía el catálogo.
func (c *Catalog[E]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*E)
	c.order = nil
}
