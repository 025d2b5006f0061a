package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/catalog"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

func newProducts() *catalog.Catalog[entity.Product] {
	return catalog.New("producto", func(name string) *entity.Product {
		return &entity.Product{Name: name}
	})
}

func TestCatalog_CreateIdempotente(t *testing.T) {
	c := newProducts()
	p1, err := c.Create("Widget")
	require.NoError(t, err)
	p2, err := c.Create("Widget")
	require.NoError(t, err)

	assert.Same(t, p1, p2, "el segundo Create debe devolver la misma instancia")
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_NombreSensibleAMayusculas(t *testing.T) {
	c := newProducts()
	_, _ = c.Create("widget")
	_, _ = c.Create("Widget")
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_CreateSinNombre(t *testing.T) {
	_, err := newProducts().Create("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_GetYExists(t *testing.T) {
	c := newProducts()
	_, _ = c.Create("Widget")

	p, err := c.Get("Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.True(t, c.Exists("Widget"))

	_, err = c.Get("NonExistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, c.Exists("NonExistent"))
}

func TestCatalog_Remove(t *testing.T) {
	c := newProducts()
	_, _ = c.Create("Widget")

	assert.True(t, c.Remove("Widget"))
	assert.False(t, c.Remove("Widget"), "segunda eliminación no debe fallar, solo devolver false")
	assert.False(t, c.Exists("Widget"))
}

func TestCatalog_GetAllOrdenDeInsercion(t *testing.T) {
	c := newProducts()
	for _, n := range []string{"Widget", "Gadget", "Doohickey"} {
		_, _ = c.Create(n)
	}
	c.Remove("Gadget")
	_, _ = c.Create("Gadget")

	var names []string
	for _, p := range c.GetAll() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Widget", "Doohickey", "Gadget"}, names)
}

func TestCatalog_PutYClear(t *testing.T) {
	c := newProducts()
	c.Put("Widget", &entity.Product{ID: "abc", Name: "Widget"})
	p, err := c.Get("Widget")
	require.NoError(t, err)
	assert.Equal(t, "abc", p.ID)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.GetAll())
}
