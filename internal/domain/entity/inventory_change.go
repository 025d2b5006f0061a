package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryChange es una entrada del ledger: cambio neto registrado en un instante (precisión milisegundo).
// Positivo = entrada, negativo = salida.
type InventoryChange struct {
	Timestamp time.Time       `json:"timestamp"`
	NetChange decimal.Decimal `json:"net_change"`
}
