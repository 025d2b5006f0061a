package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
	"github.com/jhoicas/Scheduling-api/internal/domain/registry"
)

// Snapshot toma la foto de catálogos, relaciones y entradas de cada ledger.
func (s *Service) Snapshot() *entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &entity.Snapshot{
		ID:        uuid.New().String(),
		TakenAt:   time.Now().UTC(),
		Products:  make([]entity.Product, 0, s.products.Len()),
		Locations: make([]entity.Location, 0, s.locations.Len()),
		Relations: make([]entity.RelationSnapshot, 0, s.relations.Len()),
	}
	for _, p := range s.products.GetAll() {
		snap.Products = append(snap.Products, *p)
	}
	for _, l := range s.locations.GetAll() {
		snap.Locations = append(snap.Locations, *l)
	}
	for _, rel := range s.relations.GetAll() {
		snap.Relations = append(snap.Relations, entity.RelationSnapshot{
			Relation: rel.ProductLocation,
			Changes:  rel.Ledger.GetAllInventoryChanges(),
		})
	}
	return snap
}

// Restore reemplaza todo el estado por el del snapshot. Las entradas se restauran con valor exacto
// (UpdateInventory). Si el snapshot es inválido el estado actual no se toca.
func (s *Service) Restore(snap *entity.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot vacío: %w", domain.ErrInvalidInput)
	}
	for _, p := range snap.Products {
		if p.Name == "" {
			return fmt.Errorf("snapshot: producto sin nombre: %w", domain.ErrInvalidInput)
		}
	}
	for _, l := range snap.Locations {
		if l.Name == "" {
			return fmt.Errorf("snapshot: ubicación sin nombre: %w", domain.ErrInvalidInput)
		}
	}

	relations := make([]*registry.Relation, 0, len(snap.Relations))
	for _, rs := range snap.Relations {
		pl := rs.Relation
		if pl.ProductName == "" || pl.LocationName == "" {
			return fmt.Errorf("snapshot: relación %q incompleta: %w", pl.Key, domain.ErrInvalidInput)
		}
		if want := entity.RelationKey(pl.ProductName, pl.LocationName); pl.Key != want {
			return fmt.Errorf("snapshot: clave %q no corresponde a %q: %w", pl.Key, want, domain.ErrInvalidInput)
		}
		l := ledger.New(pl.Key)
		ops := make([]ledger.Operation, 0, len(rs.Changes))
		for _, c := range rs.Changes {
			ops = append(ops, ledger.Operation{Kind: ledger.OpUpdate, Timestamp: c.Timestamp, Quantity: c.NetChange})
		}
		if err := l.Apply(ops); err != nil {
			return fmt.Errorf("snapshot: relación %q: %w", pl.Key, err)
		}
		relations = append(relations, &registry.Relation{ProductLocation: pl, Ledger: l})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.relations.Clear()
	s.products.Clear()
	s.locations.Clear()
	for i := range snap.Products {
		p := snap.Products[i]
		s.products.Put(p.Name, &p)
	}
	for i := range snap.Locations {
		l := snap.Locations[i]
		s.locations.Put(l.Name, &l)
	}
	for _, rel := range relations {
		s.relations.Put(rel)
	}
	s.log.Info().
		Str("snapshot_id", snap.ID).
		Int("products", len(snap.Products)).
		Int("locations", len(snap.Locations)).
		Int("relations", len(relations)).
		Msg("snapshot restaurado")
	return nil
}

// SaveSnapshot toma un snapshot y lo persiste en el backend configurado.
func (s *Service) SaveSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	if s.snapshots == nil {
		return nil, fmt.Errorf("persistencia de snapshots no configurada: %w", domain.ErrUnavailable)
	}
	snap := s.Snapshot()
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}
	s.log.Info().Str("snapshot_id", snap.ID).Int("relations", len(snap.Relations)).Msg("snapshot guardado")
	return snap, nil
}

// LoadSnapshot carga el último snapshot del backend y lo restaura. ErrNotFound si no hay ninguno.
func (s *Service) LoadSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	if s.snapshots == nil {
		return nil, fmt.Errorf("persistencia de snapshots no configurada: %w", domain.ErrUnavailable)
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("snapshot: %w", domain.ErrNotFound)
	}
	if err := s.Restore(snap); err != nil {
		return nil, err
	}
	return snap, nil
}
