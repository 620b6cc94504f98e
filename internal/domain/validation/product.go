package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// Letras, espacios, tildes y "ñ". Sin números ni caracteres raros.
var nameRegex = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)

// Pisos de precio por categoría. El piso se recalcula con la categoría:
// es una regla cruzada, no un mínimo fijo del campo precio.
var (
	dishMinPrice     = decimal.NewFromInt(10)
	beverageMinPrice = decimal.NewFromInt(1)
	defaultMinPrice  = decimal.NewFromFloat(0.01)
)

// ProductRecord es un producto candidato a crear o actualizar.
// Price nil significa que el campo no fue enviado.
type ProductRecord struct {
	Name        string
	Description string
	Category    string
	Price       *decimal.Decimal
	Stock       int
}

// PriceFloor devuelve el precio mínimo según la categoría seleccionada.
func PriceFloor(category string) decimal.Decimal {
	switch category {
	case entity.CategoryDish:
		return dishMinPrice
	case entity.CategoryBeverage:
		return beverageMinPrice
	default:
		return defaultMinPrice
	}
}

// ValidateProduct valida un producto candidato y devuelve la primera falla.
// Recorta los espacios al inicio y al final de nombre y descripción sobre el
// propio registro: el valor validado es el valor que se persiste.
func ValidateProduct(r *ProductRecord) Result {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)

	return eval([]rule{
		{
			field: "name", kind: KindFormat,
			ok:      func() bool { return r.Name != "" },
			message: "El nombre es obligatorio.",
		},
		{
			field: "name", kind: KindFormat,
			ok: func() bool {
				n := utf8.RuneCountInString(r.Name)
				return n >= 3 && n <= 50
			},
			message: "El nombre debe tener entre 3 y 50 caracteres.",
		},
		{
			field: "name", kind: KindFormat,
			ok:      func() bool { return nameRegex.MatchString(r.Name) },
			message: "El nombre solo puede contener letras, espacios, tildes y \"ñ\".",
		},
		{
			field: "description", kind: KindFormat,
			ok:      func() bool { return r.Description != "" },
			message: "La descripción es obligatoria.",
		},
		{
			field: "description", kind: KindFormat,
			ok:      func() bool { return utf8.RuneCountInString(r.Description) <= 200 },
			message: "La descripción no puede superar los 200 caracteres.",
		},
		{
			field: "category", kind: KindFormat,
			ok: func() bool {
				return r.Category == entity.CategoryDish || r.Category == entity.CategoryBeverage
			},
			message: "Debe seleccionar una categoría (Plato o Bebida).",
		},
		{
			field: "price", kind: KindFormat,
			ok:      func() bool { return r.Price != nil },
			message: "El precio es obligatorio.",
		},
		{
			field: "price", kind: KindBusiness,
			ok:      func() bool { return r.Price.GreaterThanOrEqual(PriceFloor(r.Category)) },
			message: priceMessage(r.Category),
		},
		{
			field: "stock", kind: KindFormat,
			ok:      func() bool { return r.Stock >= 1 && r.Stock <= 9999 },
			message: "El stock debe ser un entero entre 1 y 9999.",
		},
	})
}

func priceMessage(category string) string {
	switch category {
	case entity.CategoryDish:
		return "El precio de un plato debe ser de al menos S/ 10.00."
	case entity.CategoryBeverage:
		return "El precio de una bebida debe ser de al menos S/ 1.00."
	default:
		return "El precio debe ser mayor que cero."
	}
}
