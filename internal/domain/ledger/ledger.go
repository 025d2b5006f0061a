// Package ledger implementa el libro de inventario por relación producto@ubicacion:
// un conjunto ordenado de cambios netos indexado por instante (milisegundo) con
// consultas puntuales, acumuladas (suma de prefijos) y por rango.
package ledger

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// Ledger guarda como máximo una entrada por instante. Invariantes:
//   - keys ascendente y sin duplicados; values y prefix tienen la misma longitud que keys.
//   - prefix[i] = values[0] + ... + values[i], reconstruido desde el índice modificado en cada escritura.
//
// Las lecturas comparten el RWMutex; las escrituras son exclusivas por ledger.
type Ledger struct {
	mu          sync.RWMutex
	relationKey string
	keys        []int64
	values      []decimal.Decimal
	prefix      []decimal.Decimal
}

// New crea un ledger vacío para la relación indicada.
func New(relationKey string) *Ledger {
	return &Ledger{relationKey: relationKey}
}

// RelationKey devuelve la clave producto@ubicacion dueña del ledger.
func (l *Ledger) RelationKey() string { return l.relationKey }

// QuantityFromFloat convierte un float64 de la frontera a decimal. NaN e infinitos son ErrInvalidInput.
func QuantityFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("cantidad no finita %v: %w", f, domain.ErrInvalidInput)
	}
	return decimal.NewFromFloat(f), nil
}

// Normalize lleva un instante a la precisión almacenada (UTC, milisegundo).
func Normalize(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli()).UTC()
}

// AddInventory acumula quantity en la entrada de timestamp (la crea si no existe).
func (l *Ledger) AddInventory(timestamp time.Time, quantity decimal.Decimal) error {
	return l.Apply([]Operation{{Kind: OpAdd, Timestamp: timestamp, Quantity: quantity}})
}

// RemoveInventory acumula -quantity en la entrada de timestamp (la crea si no existe).
func (l *Ledger) RemoveInventory(timestamp time.Time, quantity decimal.Decimal) error {
	return l.Apply([]Operation{{Kind: OpRemove, Timestamp: timestamp, Quantity: quantity}})
}

// UpdateInventory sobrescribe el cambio neto de timestamp con netChange exacto (no acumula).
func (l *Ledger) UpdateInventory(timestamp time.Time, netChange decimal.Decimal) error {
	return l.Apply([]Operation{{Kind: OpUpdate, Timestamp: timestamp, Quantity: netChange}})
}

// Apply valida todas las operaciones y luego las aplica en orden bajo un único bloqueo.
// Si alguna es inválida no se aplica ninguna.
func (l *Ledger) Apply(ops []Operation) error {
	for i, op := range ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("operación %d: %w", i, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, op := range ops {
		l.apply(op)
	}
	return nil
}

// GetInventoryChangeAtTime devuelve el cambio neto exacto en timestamp, o cero si no hay entrada.
func (l *Ledger) GetInventoryChangeAtTime(timestamp time.Time) decimal.Decimal {
	ms := timestamp.UnixMilli()

	l.mu.RLock()
	defer l.mu.RUnlock()
	i, found := l.search(ms)
	if !found {
		return decimal.Zero
	}
	return l.values[i]
}

// GetCumulativeInventory suma los cambios con instante <= timestamp (cota superior inclusiva).
func (l *Ledger) GetCumulativeInventory(timestamp time.Time) decimal.Decimal {
	ms := timestamp.UnixMilli()

	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.upperBound(ms)
	if n == 0 {
		return decimal.Zero
	}
	return l.prefix[n-1]
}

// GetAllInventoryChanges devuelve una copia de todas las entradas en orden ascendente.
func (l *Ledger) GetAllInventoryChanges() []entity.InventoryChange {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.slice(0, len(l.keys))
}

// GetInventoryChangesInRange devuelve las entradas con start <= instante <= end en orden ascendente.
// start > end produce una lista vacía.
func (l *Ledger) GetInventoryChangesInRange(start, end time.Time) []entity.InventoryChange {
	from, to := start.UnixMilli(), end.UnixMilli()
	if from > to {
		return []entity.InventoryChange{}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	lo := sort.Search(len(l.keys), func(i int) bool { return l.keys[i] >= from })
	hi := l.upperBound(to)
	return l.slice(lo, hi)
}

// Len devuelve la cantidad de instantes distintos registrados.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.keys)
}

// Summary resume el ledger: número de entradas, primer y último instante y saldo final.
func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s := Summary{RelationKey: l.relationKey, Entries: len(l.keys), Balance: decimal.Zero}
	if n := len(l.keys); n > 0 {
		s.First = time.UnixMilli(l.keys[0]).UTC()
		s.Last = time.UnixMilli(l.keys[n-1]).UTC()
		s.Balance = l.prefix[n-1]
	}
	return s
}

// Summary es la vista agregada devuelta por Ledger.Summary.
type Summary struct {
	RelationKey string
	Entries     int
	First       time.Time
	Last        time.Time
	Balance     decimal.Decimal
}

func (l *Ledger) apply(op Operation) {
	ms := op.Timestamp.UnixMilli()
	i, found := l.search(ms)
	if !found {
		l.keys = slices.Insert(l.keys, i, ms)
		l.values = slices.Insert(l.values, i, decimal.Zero)
		l.prefix = slices.Insert(l.prefix, i, decimal.Zero)
	}

	switch op.Kind {
	case OpAdd:
		l.values[i] = l.values[i].Add(op.Quantity)
	case OpRemove:
		l.values[i] = l.values[i].Sub(op.Quantity)
	case OpUpdate:
		l.values[i] = op.Quantity
	}
	l.rebuildFrom(i)
}

func (l *Ledger) rebuildFrom(i int) {
	running := decimal.Zero
	if i > 0 {
		running = l.prefix[i-1]
	}
	for j := i; j < len(l.values); j++ {
		running = running.Add(l.values[j])
		l.prefix[j] = running
	}
}

// search devuelve el índice de ms o el punto de inserción si no existe.
func (l *Ledger) search(ms int64) (int, bool) {
	i := sort.Search(len(l.keys), func(j int) bool { return l.keys[j] >= ms })
	return i, i < len(l.keys) && l.keys[i] == ms
}

// upperBound devuelve cuántas entradas tienen instante <= ms.
func (l *Ledger) upperBound(ms int64) int {
	return sort.Search(len(l.keys), func(j int) bool { return l.keys[j] > ms })
}

func (l *Ledger) slice(lo, hi int) []entity.InventoryChange {
	if hi < lo {
		hi = lo
	}
	out := make([]entity.InventoryChange, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, entity.InventoryChange{
			Timestamp: time.UnixMilli(l.keys[i]).UTC(),
			NetChange: l.values[i],
		})
	}
	return out
}
