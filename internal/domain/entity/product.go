package entity

import "time"

// Product representa un producto del catálogo. La identidad es el nombre (sensible a mayúsculas).
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
