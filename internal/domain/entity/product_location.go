package entity

import (
	"strings"
	"time"
)

// KeySeparator separa producto y ubicación en la clave compuesta.
const KeySeparator = "@"

// ProductLocation es la relación única (producto, ubicación). Su clave externa es "producto@ubicacion".
type ProductLocation struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	LocationName string    `json:"location_name"`
	Key          string    `json:"key"`
	CreatedAt    time.Time `json:"created_at"`
}

// RelationKey construye la clave compuesta producto@ubicacion.
func RelationKey(productName, locationName string) string {
	return productName + KeySeparator + locationName
}

// ParseRelationKey separa una clave en producto y ubicación usando el último "@".
// Los nombres de producto pueden contener "@"; los de ubicación no se separan.
func ParseRelationKey(key string) (productName, locationName string, ok bool) {
	i := strings.LastIndex(key, KeySeparator)
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}
