package entity

import "time"

// Tipos de documento de identidad soportados.
const (
	DocumentDNI = "DNI" // Documento Nacional de Identidad: 8 dígitos
	DocumentCNE = "CNE" // Carné de Extranjería: 20 dígitos
)

// User representa un usuario del sistema.
// PasswordHash es bcrypt; la contraseña en claro nunca se persiste ni se
// devuelve en respuestas (campo de solo escritura).
type User struct {
	ID               string
	DocumentType     string // DNI o CNE
	DocumentNumber   string
	Name             string
	LastName         string
	Cellphone        string
	Email            string
	PasswordHash     string
	Role             string
	RegistrationDate time.Time
	State            string // A = Activo, I = Inactivo
	ImagePath        string // ruta de la imagen de perfil, vacía si no tiene
}
