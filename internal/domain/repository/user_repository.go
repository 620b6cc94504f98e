package repository

import "github.com/restobar-app/restobar-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListAll() ([]*entity.User, error)
	ListByState(state string) ([]*entity.User, error)
	Update(user *entity.User) error
	SetState(id, state string) error
	UpdateImagePath(id, imagePath string) error
}
