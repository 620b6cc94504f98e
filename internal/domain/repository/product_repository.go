package repository

import "github.com/restobar-app/restobar-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Delete y Restore son cambios de estado, nunca borrado físico.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListByState(state string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	SetState(id, state string) error
}
