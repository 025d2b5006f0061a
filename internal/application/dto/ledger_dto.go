package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntityRequest body para POST /api/products y POST /api/locations.
type CreateEntityRequest struct {
	Name string `json:"name" validate:"required"`
}

// EntityResponse salida de un producto o una ubicación.
type EntityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductLocationRequest body para POST /api/product-locations.
type CreateProductLocationRequest struct {
	Product  string `json:"product" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// ProductLocationResponse salida de una relación con el tamaño de su ledger.
type ProductLocationResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Product   string    `json:"product"`
	Location  string    `json:"location"`
	Entries   int       `json:"entries"`
	CreatedAt time.Time `json:"created_at"`
}

// InventoryChangeRequest body para add, remove y update sobre una relación.
// Timestamp en RFC3339; se guarda con precisión de milisegundo.
type InventoryChangeRequest struct {
	Timestamp time.Time       `json:"timestamp"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ChangeOperation una operación del lote: op = add | remove | update.
type ChangeOperation struct {
	Op        string          `json:"op" validate:"required,oneof=add remove update"`
	Timestamp time.Time       `json:"timestamp"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// BulkChangesRequest body para POST /api/product-locations/:key/changes.
type BulkChangesRequest struct {
	Changes []ChangeOperation `json:"changes"`
}

// InventoryChangeResponse una entrada del ledger.
type InventoryChangeResponse struct {
	Timestamp time.Time       `json:"timestamp"`
	NetChange decimal.Decimal `json:"net_change"`
}

// InventoryChangesResponse listado de entradas de una relación.
type InventoryChangesResponse struct {
	Key     string                    `json:"key"`
	Changes []InventoryChangeResponse `json:"changes"`
}

// QuantityResponse valor puntual: cambio en un instante o inventario acumulado.
type QuantityResponse struct {
	Key       string          `json:"key"`
	Timestamp time.Time       `json:"timestamp"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// LedgerSummaryResponse resumen del ledger de una relación.
type LedgerSummaryResponse struct {
	Key     string          `json:"key"`
	Entries int             `json:"entries"`
	First   *time.Time      `json:"first,omitempty"`
	Last    *time.Time      `json:"last,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// SnapshotResponse metadatos de un snapshot guardado o restaurado.
type SnapshotResponse struct {
	ID        string    `json:"id"`
	TakenAt   time.Time `json:"taken_at"`
	Products  int       `json:"products"`
	Locations int       `json:"locations"`
	Relations int       `json:"relations"`
}
