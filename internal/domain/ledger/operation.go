package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Scheduling-api/internal/domain"
)

// Tipos de operación sobre el ledger.
const (
	OpAdd    = "add"    // acumula +cantidad
	OpRemove = "remove" // acumula -cantidad
	OpUpdate = "update" // sobrescribe el cambio neto
)

// Operation es una escritura sobre el ledger; se usa en lotes con Ledger.Apply.
type Operation struct {
	Kind      string
	Timestamp time.Time
	Quantity  decimal.Decimal
}

func (op Operation) validate() error {
	switch op.Kind {
	case OpAdd, OpRemove, OpUpdate:
	default:
		return fmt.Errorf("tipo de operación %q: %w", op.Kind, domain.ErrInvalidInput)
	}
	if op.Timestamp.IsZero() {
		return fmt.Errorf("timestamp vacío: %w", domain.ErrInvalidInput)
	}
	return nil
}
