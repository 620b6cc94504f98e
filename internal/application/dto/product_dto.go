package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// Price como puntero distingue "no enviado" de cero. El cliente nunca
// envía id ni fecha de registro: los asigna el backend al crear.
// Las claves JSON conservan el contrato original del front-end.
type SaveProductRequest struct {
	Category    string           `json:"category"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID        string          `json:"productId"`
	Category         string          `json:"category"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	RegistrationDate time.Time       `json:"registrationDate"`
	State            string          `json:"state"`
}

// ProductListResponse página de productos con metadatos del paginador.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  PageMeta          `json:"meta"`
}
