package entity

import "time"

// Snapshot es la foto serializable de catálogos, relaciones y ledgers.
// La usan los backends de persistencia; el ledger en memoria sigue siendo la fuente de verdad.
type Snapshot struct {
	ID        string             `json:"id"`
	TakenAt   time.Time          `json:"taken_at"`
	Products  []Product          `json:"products"`
	Locations []Location         `json:"locations"`
	Relations []RelationSnapshot `json:"relations"`
}

// RelationSnapshot agrupa una relación con todas sus entradas en orden ascendente.
type RelationSnapshot struct {
	Relation ProductLocation   `json:"relation"`
	Changes  []InventoryChange `json:"changes"`
}
