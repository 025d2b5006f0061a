// Package export genera representaciones del ledger de una relación: XML canónico con digest y extracto PDF.
package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
)

// timestampLayout formato de instantes en los documentos (UTC, milisegundos).
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Statement datos de entrada de los exportadores: la relación y sus entradas en orden ascendente.
type Statement struct {
	Relation    entity.ProductLocation
	Changes     []entity.InventoryChange
	GeneratedAt time.Time
}

// Line una entrada con su acumulado.
type Line struct {
	Timestamp  time.Time
	NetChange  decimal.Decimal
	Cumulative decimal.Decimal
}

// Lines calcula el acumulado corrido de cada entrada.
func (s Statement) Lines() []Line {
	out := make([]Line, 0, len(s.Changes))
	running := decimal.Zero
	for _, c := range s.Changes {
		running = running.Add(c.NetChange)
		out = append(out, Line{Timestamp: c.Timestamp.UTC(), NetChange: c.NetChange, Cumulative: running})
	}
	return out
}

// Balance saldo final (suma de todas las entradas).
func (s Statement) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.Changes {
		total = total.Add(c.NetChange)
	}
	return total
}
