package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
)

// AddInventory acumula +quantity en el instante indicado.
func (s *Service) AddInventory(key string, timestamp time.Time, quantity decimal.Decimal) error {
	return s.write(key, ledger.Operation{Kind: ledger.OpAdd, Timestamp: timestamp, Quantity: quantity})
}

// RemoveInventory acumula -quantity en el instante indicado.
func (s *Service) RemoveInventory(key string, timestamp time.Time, quantity decimal.Decimal) error {
	return s.write(key, ledger.Operation{Kind: ledger.OpRemove, Timestamp: timestamp, Quantity: quantity})
}

// UpdateInventory sobrescribe el cambio neto del instante (lo crea si no existe).
func (s *Service) UpdateInventory(key string, timestamp time.Time, netChange decimal.Decimal) error {
	return s.write(key, ledger.Operation{Kind: ledger.OpUpdate, Timestamp: timestamp, Quantity: netChange})
}

// ApplyChanges aplica un lote en orden bajo un solo lock del ledger. Todo o nada.
func (s *Service) ApplyChanges(key string, ops []ledger.Operation) error {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return err
	}
	if err := rel.Ledger.Apply(ops); err != nil {
		return err
	}
	s.log.Debug().Str("relation", key).Int("operations", len(ops)).Msg("lote aplicado")
	return nil
}

func (s *Service) write(key string, op ledger.Operation) error {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return err
	}
	if err := rel.Ledger.Apply([]ledger.Operation{op}); err != nil {
		return err
	}
	s.log.Debug().
		Str("relation", key).
		Str("op", op.Kind).
		Time("timestamp", ledger.Normalize(op.Timestamp)).
		Str("quantity", op.Quantity.String()).
		Msg("cambio de inventario registrado")
	return nil
}

// GetInventoryChangeAtTime devuelve el cambio neto exacto del instante o 0.
func (s *Service) GetInventoryChangeAtTime(key string, timestamp time.Time) (decimal.Decimal, error) {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return decimal.Zero, err
	}
	return rel.Ledger.GetInventoryChangeAtTime(timestamp), nil
}

// GetCumulativeInventory devuelve la suma de cambios con instante <= timestamp.
func (s *Service) GetCumulativeInventory(key string, timestamp time.Time) (decimal.Decimal, error) {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return decimal.Zero, err
	}
	return rel.Ledger.GetCumulativeInventory(timestamp), nil
}

// GetAllInventoryChanges devuelve todas las entradas en orden ascendente.
func (s *Service) GetAllInventoryChanges(key string) ([]entity.InventoryChange, error) {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return nil, err
	}
	return rel.Ledger.GetAllInventoryChanges(), nil
}

// GetInventoryChangesInRange devuelve las entradas con start <= instante <= end.
func (s *Service) GetInventoryChangesInRange(key string, start, end time.Time) ([]entity.InventoryChange, error) {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return nil, err
	}
	return rel.Ledger.GetInventoryChangesInRange(start, end), nil
}

// Summary devuelve entradas, primer/último instante y saldo de la relación.
func (s *Service) Summary(key string) (ledger.Summary, error) {
	rel, err := s.relations.GetByKey(key)
	if err != nil {
		return ledger.Summary{}, err
	}
	return rel.Ledger.Summary(), nil
}
