package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

var (
	dniRegex   = regexp.MustCompile(`^\d{8}$`)
	cneRegex   = regexp.MustCompile(`^\d{20}$`)
	phoneRegex = regexp.MustCompile(`^9\d{8}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@(gmail\.com|hotmail\.com|outlook\.com|yahoo\.com)$`)

	// Antipatrón de documento: cadenas compuestas solo por 0 y 1.
	binaryOnlyRegex = regexp.MustCompile(`^[01]+$`)
)

// UserRecord es un usuario candidato a crear o actualizar.
// En edición (IsNew=false) la contraseña solo se valida si viene no vacía;
// vacía significa "conservar la actual".
type UserRecord struct {
	Name           string
	LastName       string
	DocumentType   string
	DocumentNumber string
	Cellphone      string
	Email          string
	Password       string
	Role           string
	IsNew          bool
}

// ValidateUser valida un usuario candidato y devuelve la primera falla.
// Recorta espacios de los campos de texto sobre el propio registro.
func ValidateUser(r *UserRecord) Result {
	r.Name = strings.TrimSpace(r.Name)
	r.LastName = strings.TrimSpace(r.LastName)
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.Cellphone = strings.TrimSpace(r.Cellphone)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)

	// Formulario completamente vacío: una sola falla de mayor prioridad,
	// antes que cualquier validación por campo.
	if r.Name == "" && r.LastName == "" && r.DocumentType == "" && r.DocumentNumber == "" &&
		r.Cellphone == "" && r.Email == "" && r.Role == "" {
		return Result{failure: &Failure{
			Field:   "form",
			Kind:    KindFormat,
			Message: "Debe rellenar todos los campos antes de continuar.",
		}}
	}

	return eval([]rule{
		{
			field: "name", kind: KindFormat,
			ok:      func() bool { return r.Name != "" && nameRegex.MatchString(r.Name) },
			message: "El nombre es obligatorio y solo puede contener letras, espacios, tildes y \"ñ\".",
		},
		{
			field: "last_name", kind: KindFormat,
			ok:      func() bool { return r.LastName != "" && nameRegex.MatchString(r.LastName) },
			message: "El apellido es obligatorio y solo puede contener letras, espacios, tildes y \"ñ\".",
		},
		{
			field: "document_type", kind: KindFormat,
			ok: func() bool {
				return r.DocumentType == entity.DocumentDNI || r.DocumentType == entity.DocumentCNE
			},
			message: "Debe seleccionar un tipo de documento.",
		},
		{
			field: "document_number", kind: KindFormat,
			ok:      func() bool { return r.DocumentNumber != "" },
			message: "Debe ingresar el número de documento.",
		},
		{
			field: "document_number", kind: KindFormat,
			ok: func() bool {
				if r.DocumentType == entity.DocumentDNI {
					return dniRegex.MatchString(r.DocumentNumber)
				}
				return cneRegex.MatchString(r.DocumentNumber)
			},
			message: documentMessage(r.DocumentType),
		},
		{
			field: "document_number", kind: KindFormat,
			ok: func() bool {
				return !allSameDigits(r.DocumentNumber) &&
					!binaryOnlyRegex.MatchString(r.DocumentNumber)
			},
			message: "El documento no puede contener solo ceros, unos, o combinaciones binarias.",
		},
		{
			field: "cellphone", kind: KindFormat,
			ok:      func() bool { return phoneRegex.MatchString(r.Cellphone) },
			message: "El celular debe comenzar con 9 y tener exactamente 9 dígitos numéricos.",
		},
		{
			field: "cellphone", kind: KindFormat,
			ok:      func() bool { return !allSameDigits(r.Cellphone) },
			message: "El celular no puede tener todos los dígitos iguales.",
		},
		{
			field: "email", kind: KindFormat,
			ok:      func() bool { return emailRegex.MatchString(r.Email) },
			message: "Debe ingresar un correo válido de gmail, hotmail, outlook o yahoo.",
		},
		{
			field: "password", kind: KindFormat,
			ok:      func() bool { return (!r.IsNew && r.Password == "") || strongPassword(r.Password) },
			message: "La contraseña debe tener al menos 8 caracteres, una mayúscula, una minúscula, un número y un símbolo.",
		},
		{
			field: "role", kind: KindFormat,
			ok:      func() bool { return r.Role != "" },
			message: "Debe seleccionar un rol.",
		},
	})
}

func documentMessage(documentType string) string {
	if documentType == entity.DocumentCNE {
		return "El CNE debe tener exactamente 20 dígitos numéricos."
	}
	return "El DNI debe tener exactamente 8 dígitos numéricos."
}

// allSameDigits reporta si s es un mismo dígito repetido dos o más veces
// ("00000000", "999999999"). RE2 no soporta backreferences, así que la
// regla se expresa como un recorrido de bytes en lugar de `^(\d)\1+$`.
func allSameDigits(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' || s[i] != s[0] {
			return false
		}
	}
	return true
}

// strongPassword replica la regla del formulario original: mínimo 8
// caracteres sin espacios, con al menos una minúscula, una mayúscula,
// un dígito y un símbolo. RE2 no soporta lookaheads, así que la regla
// se expresa como un recorrido de clases de runas.
func strongPassword(p string) bool {
	if utf8.RuneCountInString(p) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
