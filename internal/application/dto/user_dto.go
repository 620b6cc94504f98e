package dto

import "time"

// SaveUserRequest entrada para crear o actualizar un usuario. Password es
// de solo escritura: en edición, vacía significa conservar la actual.
type SaveUserRequest struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Name           string `json:"name"`
	LastName       string `json:"last_name"`
	Cellphone      string `json:"cellphone"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
}

// UserResponse salida de un usuario (nunca incluye la contraseña).
type UserResponse struct {
	UsersID          string    `json:"users_id"`
	DocumentType     string    `json:"document_type"`
	DocumentNumber   string    `json:"document_number"`
	Name             string    `json:"name"`
	LastName         string    `json:"last_name"`
	Cellphone        string    `json:"cellphone"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	RegistrationDate time.Time `json:"registration_date"`
	State            string    `json:"state"`
	ImagePath        string    `json:"imagePath,omitempty"`
}

// UserListResponse página de usuarios con metadatos del paginador.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Meta  PageMeta       `json:"meta"`
}

// PreferenceResponse una preferencia de interfaz por dueño y clave.
type PreferenceResponse struct {
	Owner string `json:"owner"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SetPreferenceRequest entrada para fijar una preferencia.
type SetPreferenceRequest struct {
	Value string `json:"value"`
}
