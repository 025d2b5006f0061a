package ledger_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
)

var t0 = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, expected int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, d(expected).Equal(got), "%s: esperado %d, obtenido %s", msg, expected, got)
}

// Recorrido de referencia: altas, baja y actualización retroactiva.
func TestLedger_RecorridoDeReferencia(t *testing.T) {
	l := ledger.New("Widget@Warehouse-A")

	require.NoError(t, l.AddInventory(t0, d(100)))
	require.NoError(t, l.AddInventory(t0.Add(2*time.Hour), d(50)))
	require.NoError(t, l.RemoveInventory(t0.Add(4*time.Hour), d(30)))
	require.NoError(t, l.AddInventory(t0.Add(6*time.Hour), d(75)))

	assertDecimal(t, 100, l.GetCumulativeInventory(t0.Add(1*time.Hour)), "t0+1h")
	assertDecimal(t, 150, l.GetCumulativeInventory(t0.Add(3*time.Hour)), "t0+3h")
	assertDecimal(t, 120, l.GetCumulativeInventory(t0.Add(5*time.Hour)), "t0+5h")
	assertDecimal(t, 195, l.GetCumulativeInventory(t0.Add(7*time.Hour)), "t0+7h")

	require.NoError(t, l.UpdateInventory(t0.Add(2*time.Hour), d(80)))
	assertDecimal(t, 80, l.GetInventoryChangeAtTime(t0.Add(2*time.Hour)), "cambio actualizado")
	assertDecimal(t, 225, l.GetCumulativeInventory(t0.Add(7*time.Hour)), "acumulado tras update")
}

func TestLedger_AddAcumulaEnMismoInstante(t *testing.T) {
	l := ledger.New("p@l")
	require.NoError(t, l.AddInventory(t0, d(100)))
	require.NoError(t, l.AddInventory(t0, d(25)))

	assertDecimal(t, 125, l.GetInventoryChangeAtTime(t0), "a + b")
	assert.Equal(t, 1, l.Len(), "un solo instante debe producir una sola entrada")
}

func TestLedger_RemoveCreaEntradaNegativa(t *testing.T) {
	l := ledger.New("p@l")
	require.NoError(t, l.RemoveInventory(t0, d(30)))
	assertDecimal(t, -30, l.GetInventoryChangeAtTime(t0), "remove sin entrada previa")

	require.NoError(t, l.AddInventory(t0, d(100)))
	require.NoError(t, l.RemoveInventory(t0, d(30)))
	assertDecimal(t, 40, l.GetInventoryChangeAtTime(t0), "-30 + 100 - 30")
}

func TestLedger_UpdateSobrescribeNoAcumula(t *testing.T) {
	l := ledger.New("p@l")
	require.NoError(t, l.AddInventory(t0, d(100)))
	require.NoError(t, l.UpdateInventory(t0, d(7)))
	assertDecimal(t, 7, l.GetInventoryChangeAtTime(t0), "update debe reemplazar")

	require.NoError(t, l.UpdateInventory(t0.Add(time.Minute), d(-3)))
	assertDecimal(t, -3, l.GetInventoryChangeAtTime(t0.Add(time.Minute)), "update crea si no existe")
	assertDecimal(t, 4, l.GetCumulativeInventory(t0.Add(time.Hour)), "acumulado")
}

func TestLedger_CambioEnInstanteAusenteEsCero(t *testing.T) {
	l := ledger.New("p@l")
	require.NoError(t, l.AddInventory(t0, d(10)))

	assert.True(t, l.GetInventoryChangeAtTime(t0.Add(time.Millisecond)).IsZero())
	assert.True(t, l.GetCumulativeInventory(t0.Add(-time.Millisecond)).IsZero(), "antes de la primera entrada")
	assertDecimal(t, 10, l.GetCumulativeInventory(t0), "cota superior inclusiva")
}

func TestLedger_PrecisionMilisegundo(t *testing.T) {
	l := ledger.New("p@l")
	require.NoError(t, l.AddInventory(t0.Add(100*time.Microsecond), d(1)))
	require.NoError(t, l.AddInventory(t0.Add(900*time.Microsecond), d(2)))

	assert.Equal(t, 1, l.Len(), "instantes que caen en el mismo milisegundo son la misma entrada")
	assertDecimal(t, 3, l.GetInventoryChangeAtTime(t0), "acumulado en el milisegundo")
}

func TestLedger_ZonasHorariasMismoInstante(t *testing.T) {
	l := ledger.New("p@l")
	bogota := time.FixedZone("COT", -5*3600)
	require.NoError(t, l.AddInventory(t0, d(1)))
	require.NoError(t, l.AddInventory(t0.In(bogota), d(1)))

	assert.Equal(t, 1, l.Len())
	changes := l.GetAllInventoryChanges()
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Timestamp.Equal(t0))
	assert.Equal(t, time.UTC, changes[0].Timestamp.Location())
}

func TestLedger_GetAllOrdenAscendente(t *testing.T) {
	l := ledger.New("p@l")
	for _, h := range []int{5, 1, 3, 0, 4, 2} {
		require.NoError(t, l.AddInventory(t0.Add(time.Duration(h)*time.Hour), d(int64(h+1))))
	}

	changes := l.GetAllInventoryChanges()
	require.Len(t, changes, 6)
	for i := 1; i < len(changes); i++ {
		assert.True(t, changes[i-1].Timestamp.Before(changes[i].Timestamp), "orden estrictamente ascendente")
	}

	// La copia no debe compartir estado con el ledger.
	changes[0].NetChange = d(999)
	assertDecimal(t, 1, l.GetInventoryChangeAtTime(t0), "lectura no destructiva")
}

func TestLedger_RangoInclusivo(t *testing.T) {
	l := ledger.New("p@l")
	for h := 0; h < 6; h++ {
		require.NoError(t, l.AddInventory(t0.Add(time.Duration(h)*time.Hour), d(1)))
	}

	got := l.GetInventoryChangesInRange(t0.Add(1*time.Hour), t0.Add(4*time.Hour))
	require.Len(t, got, 4, "ambos extremos incluidos")
	assert.True(t, got[0].Timestamp.Equal(t0.Add(1*time.Hour)))
	assert.True(t, got[3].Timestamp.Equal(t0.Add(4*time.Hour)))

	got = l.GetInventoryChangesInRange(t0.Add(90*time.Minute), t0.Add(150*time.Minute))
	require.Len(t, got, 1)
	assert.True(t, got[0].Timestamp.Equal(t0.Add(2*time.Hour)))
}

func TestLedger_RangoVacio(t *testing.T) {
	l := ledger.New("p@l")
	assert.Empty(t, l.GetInventoryChangesInRange(t0, t0.Add(time.Hour)), "ledger vacío")

	require.NoError(t, l.AddInventory(t0, d(1)))
	got := l.GetInventoryChangesInRange(t0.Add(time.Hour), t0)
	assert.NotNil(t, got)
	assert.Empty(t, got, "start > end produce lista vacía")
}

func TestLedger_AcumuladoCoincideConSumaIngenua(t *testing.T) {
	l := ledger.New("p@l")
	ops := []struct {
		kind string
		h    int
		q    int64
	}{
		{ledger.OpAdd, 3, 10}, {ledger.OpAdd, 1, 5}, {ledger.OpRemove, 2, 4},
		{ledger.OpUpdate, 3, 2}, {ledger.OpAdd, 0, 1}, {ledger.OpRemove, 1, 5},
		{ledger.OpUpdate, 7, -6}, {ledger.OpAdd, 5, 9},
	}
	for _, op := range ops {
		require.NoError(t, l.Apply([]ledger.Operation{{Kind: op.kind, Timestamp: t0.Add(time.Duration(op.h) * time.Hour), Quantity: d(op.q)}}))
	}

	all := l.GetAllInventoryChanges()
	for h := -1; h <= 8; h++ {
		at := t0.Add(time.Duration(h) * time.Hour)
		want := decimal.Zero
		for _, c := range all {
			if !c.Timestamp.After(at) {
				want = want.Add(c.NetChange)
			}
		}
		assert.True(t, want.Equal(l.GetCumulativeInventory(at)), "hora %d: esperado %s", h, want)
	}
}

func TestLedger_ApplyTodoONada(t *testing.T) {
	l := ledger.New("p@l")
	err := l.Apply([]ledger.Operation{
		{Kind: ledger.OpAdd, Timestamp: t0, Quantity: d(1)},
		{Kind: "transfer", Timestamp: t0, Quantity: d(1)},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, l.Len(), "ninguna operación debe aplicarse si una es inválida")

	err = l.AddInventory(time.Time{}, d(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "timestamp vacío")
}

func TestQuantityFromFloat(t *testing.T) {
	q, err := ledger.QuantityFromFloat(12.5)
	require.NoError(t, err)
	assert.Equal(t, "12.5", q.String())

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ledger.QuantityFromFloat(f)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%v debe rechazarse", f)
	}
}

func TestLedger_Summary(t *testing.T) {
	l := ledger.New("p@l")
	s := l.Summary()
	assert.Equal(t, 0, s.Entries)
	assert.True(t, s.Balance.IsZero())

	require.NoError(t, l.AddInventory(t0.Add(time.Hour), d(5)))
	require.NoError(t, l.RemoveInventory(t0, d(2)))
	s = l.Summary()
	assert.Equal(t, "p@l", s.RelationKey)
	assert.Equal(t, 2, s.Entries)
	assert.True(t, s.First.Equal(t0))
	assert.True(t, s.Last.Equal(t0.Add(time.Hour)))
	assertDecimal(t, 3, s.Balance, "saldo")
}

func TestLedger_Concurrente(t *testing.T) {
	l := ledger.New("p@l")
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = l.AddInventory(t0.Add(time.Duration(i)*time.Second), d(1))
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = l.GetCumulativeInventory(t0.Add(time.Duration(i) * time.Second))
				_ = l.GetInventoryChangesInRange(t0, t0.Add(time.Minute))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, l.Len())
	assertDecimal(t, 800, l.GetCumulativeInventory(t0.Add(time.Hour)), "8 escritores x 100 instantes")
}

func TestNormalize(t *testing.T) {
	in := time.Date(2024, 1, 1, 8, 0, 0, 123456789, time.FixedZone("X", 3600))
	out := ledger.Normalize(in)
	assert.Equal(t, time.UTC, out.Location())
	assert.Equal(t, 123000000, out.Nanosecond())
}
