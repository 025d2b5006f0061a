package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Scheduling-api/internal/domain/catalog"
	"github.com/jhoicas/Scheduling-api/internal/domain/entity"
	"github.com/jhoicas/Scheduling-api/internal/domain/registry"
	"github.com/jhoicas/Scheduling-api/internal/domain/repository"
	"github.com/jhoicas/Scheduling-api/pkg/logger"
)

// Service es el contexto de proceso: dueño de los catálogos de productos y ubicaciones,
// del registro de relaciones y, a través de éste, de un ledger por relación.
// Las mutaciones que cruzan componentes (crear/eliminar relaciones, cascada, restore)
// se serializan con mu; las operaciones sobre un ledger solo toman el lock del ledger.
type Service struct {
	mu            sync.Mutex
	products      *catalog.Catalog[entity.Product]
	locations     *catalog.Catalog[entity.Location]
	relations     *registry.Registry
	snapshots     repository.SnapshotRepository
	log           *logger.Logger
	cascadeRemove bool
}

// NewService construye el servicio. snapshots puede ser nil (sin persistencia).
// Con cascadeRemove, eliminar un producto o una ubicación elimina también sus relaciones y ledgers.
func NewService(snapshots repository.SnapshotRepository, log *logger.Logger, cascadeRemove bool) *Service {
	if log == nil {
		log = logger.Nop()
	}
	products := catalog.New("producto", func(name string) *entity.Product {
		return &entity.Product{ID: uuid.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	})
	locations := catalog.New("ubicación", func(name string) *entity.Location {
		return &entity.Location{ID: uuid.New().String(), Name: name, CreatedAt: time.Now().UTC()}
	})
	return &Service{
		products:      products,
		locations:     locations,
		relations:     registry.New(products, locations),
		snapshots:     snapshots,
		log:           log.Component("inventory"),
		cascadeRemove: cascadeRemove,
	}
}

// SnapshotsEnabled indica si hay un backend de snapshots configurado.
func (s *Service) SnapshotsEnabled() bool {
	return s.snapshots != nil
}

// Reset descarta catálogos, relaciones y ledgers.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relations.Clear()
	s.products.Clear()
	s.locations.Clear()
	s.log.Info().Msg("estado de inventario reiniciado")
}
