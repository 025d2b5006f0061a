package entity

import "time"

// Location representa una bodega, tienda o cualquier ubicación donde se guarda inventario.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
