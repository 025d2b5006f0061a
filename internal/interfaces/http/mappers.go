package http

import (
	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/ledger"
	"github.com/jhoicas/Scheduling-api/internal/domain/registry"
)

func toProductResponse(p *entity.Product) dto.EntityResponse {
	return dto.EntityResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toLocationResponse(l *entity.Location) dto.EntityResponse {
	return dto.EntityResponse{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt}
}

func toRelationResponse(rel *registry.Relation) dto.ProductLocationResponse {
	return dto.ProductLocationResponse{
		ID:        rel.ID,
		Key:       rel.Key,
		Product:   rel.ProductName,
		Location:  rel.LocationName,
		Entries:   rel.Ledger.Len(),
		CreatedAt: rel.CreatedAt,
	}
}

func toRelationList(list []*registry.Relation) []dto.ProductLocationResponse {
	out := make([]dto.ProductLocationResponse, 0, len(list))
	for _, rel := range list {
		out = append(out, toRelationResponse(rel))
	}
	return out
}

func toChangesResponse(key string, changes []entity.InventoryChange) dto.InventoryChangesResponse {
	out := dto.InventoryChangesResponse{Key: key, Changes: make([]dto.InventoryChangeResponse, 0, len(changes))}
	for _, c := range changes {
		out.Changes = append(out.Changes, dto.InventoryChangeResponse{Timestamp: c.Timestamp, NetChange: c.NetChange})
	}
	return out
}

func toSummaryResponse(s ledger.Summary) dto.LedgerSummaryResponse {
	out := dto.LedgerSummaryResponse{Key: s.RelationKey, Entries: s.Entries, Balance: s.Balance}
	if s.Entries > 0 {
		first, last := s.First, s.Last
		out.First = &first
		out.Last = &last
	}
	return out
}

func toSnapshotResponse(s *entity.Snapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ID:        s.ID,
		TakenAt:   s.TakenAt,
		Products:  len(s.Products),
		Locations: len(s.Locations),
		Relations: len(s.Relations),
	}
}
