package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto (carta del restaurante).
const (
	CategoryDish     = "P" // Plato
	CategoryBeverage = "B" // Bebida
)

// Estados lógicos de un registro. La eliminación es siempre lógica:
// el registro nunca se borra físicamente, solo cambia de estado.
const (
	StateActive   = "A"
	StateInactive = "I"
)

// Product representa un producto de la carta (plato o bebida).
// RegistrationDate la asigna el backend al crear; el cliente nunca la envía.
type Product struct {
	ID               string
	Category         string // P = Plato, B = Bebida
	Name             string
	Description      string
	Price            decimal.Decimal
	Stock            int
	RegistrationDate time.Time
	State            string // A = Activo, I = Inactivo
}
