package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
	"github.com/jhoicas/Scheduling-api/pkg/logger"
)

func row(line int, p, l, kind string, ts time.Time, q int64) inventory.ImportRow {
	return inventory.ImportRow{
		Line: line, Product: p, Location: l,
		Op: ledger.Operation{Kind: kind, Timestamp: ts, Quantity: d(q)},
	}
}

func TestService_ImportCreaEntidadesYAplica(t *testing.T) {
	svc := inventory.NewService(nil, logger.Nop(), false)
	_, _ = svc.CreateProduct("Widget")

	stats, err := svc.Import([]inventory.ImportRow{
		row(1, "Widget", "Warehouse-A", ledger.OpAdd, t0, 100),
		row(2, "Gadget", "Warehouse-A", ledger.OpAdd, t0, 5),
		row(3, "Widget", "Warehouse-A", ledger.OpRemove, t0.Add(time.Hour), 30),
	})
	require.NoError(t, err)
	assert.Equal(t, inventory.ImportStats{Rows: 3, Products: 1, Locations: 1, Relations: 2}, stats)

	got, err := svc.GetCumulativeInventory("Widget@Warehouse-A", t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, d(70).Equal(got))
}

func TestService_ImportInvalidoNoTocaEstado(t *testing.T) {
	svc := inventory.NewService(nil, logger.Nop(), false)

	_, err := svc.Import([]inventory.ImportRow{
		row(1, "Widget", "Warehouse-A", ledger.OpAdd, t0, 100),
		row(2, "Widget", "Warehouse-A", "move", t0, 1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "línea 2")
	assert.Empty(t, svc.ListProducts())
	assert.Empty(t, svc.ListProductLocations())

	_, err = svc.Import([]inventory.ImportRow{row(1, "", "Warehouse-A", ledger.OpAdd, t0, 1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
