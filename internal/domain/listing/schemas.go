package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// ProductSchema campos de producto ante el motor. La búsqueda cubre
// nombre, descripción y categoría; todas las columnas son ordenables.
func ProductSchema() Schema[entity.Product] {
	return Schema[entity.Product]{
		"name": {
			Kind: Text, Searchable: true,
			Text: func(p entity.Product) string { return p.Name },
		},
		"description": {
			Kind: Text, Searchable: true,
			Text: func(p entity.Product) string { return p.Description },
		},
		"category": {
			Kind: Text, Searchable: true,
			Text: func(p entity.Product) string { return p.Category },
		},
		"price": {
			Kind:   Numeric,
			Number: func(p entity.Product) decimal.Decimal { return p.Price },
		},
		"stock": {
			Kind:   Numeric,
			Number: func(p entity.Product) decimal.Decimal { return decimal.NewFromInt(int64(p.Stock)) },
		},
		"registration_date": {
			Kind: Time,
			Time: func(p entity.Product) time.Time { return p.RegistrationDate },
		},
		"state": {
			Kind: Text,
			Text: func(p entity.Product) string { return p.State },
		},
	}
}

// UserSchema campos de usuario ante el motor. La búsqueda cubre nombre,
// apellido, número de documento y correo.
func UserSchema() Schema[entity.User] {
	return Schema[entity.User]{
		"name": {
			Kind: Text, Searchable: true,
			Text: func(u entity.User) string { return u.Name },
		},
		"last_name": {
			Kind: Text, Searchable: true,
			Text: func(u entity.User) string { return u.LastName },
		},
		"document_number": {
			Kind: Text, Searchable: true,
			Text: func(u entity.User) string { return u.DocumentNumber },
		},
		"email": {
			Kind: Text, Searchable: true,
			Text: func(u entity.User) string { return u.Email },
		},
		"document_type": {
			Kind: Text,
			Text: func(u entity.User) string { return u.DocumentType },
		},
		"role": {
			Kind: Text,
			Text: func(u entity.User) string { return u.Role },
		},
		"registration_date": {
			Kind: Time,
			Time: func(u entity.User) time.Time { return u.RegistrationDate },
		},
		"state": {
			Kind: Text,
			Text: func(u entity.User) string { return u.State },
		},
	}
}
