package usecase

import (
	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/domain"
	"github.com/restobar-app/restobar-api/internal/domain/repository"
)

// PreferenceUseCase preferencias de interfaz por dueño y clave (por
// ejemplo, la última sección de navegación activa). Puerto explícito en
// lugar de estado global del navegador.
type PreferenceUseCase struct {
	repo repository.PreferenceRepository
}

// NewPreferenceUseCase construye el caso de uso.
func NewPreferenceUseCase(repo repository.PreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{repo: repo}
}

// Get obtiene el valor de una preferencia. ErrNotFound si no está fijada;
// una preferencia fijada con valor vacío sí se devuelve.
func (uc *PreferenceUseCase) Get(owner, key string) (*dto.PreferenceResponse, error) {
	value, found, err := uc.repo.Get(owner, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return &dto.PreferenceResponse{Owner: owner, Key: key, Value: value}, nil
}

// Set fija (o reemplaza) el valor de una preferencia.
func (uc *PreferenceUseCase) Set(owner, key, value string) (*dto.PreferenceResponse, error) {
	if err := uc.repo.Set(owner, key, value); err != nil {
		return nil, err
	}
	return &dto.PreferenceResponse{Owner: owner, Key: key, Value: value}, nil
}
