// Package validation implementa la validación de registros candidatos
// (productos y usuarios) tal como la aplicaba el formulario original:
// una lista ordenada de reglas evaluadas en secuencia, donde la primera
// regla que falla corta la validación y determina el mensaje mostrado.
//
// La validación es síncrona, sin efectos y total: nunca lanza pánico,
// siempre devuelve un Result. Ninguna falla de validación llega al
// backend; el guardado se bloquea por completo del lado del llamador.
package validation

// Kind clasifica una falla de validación.
type Kind string

const (
	// KindFormat el valor no cumple la forma requerida (patrón, longitud, rango).
	// Incluye los antipatrones de dígitos (todos iguales / solo binarios),
	// que son de forma aunque lleven mensaje propio.
	KindFormat Kind = "format"
	// KindBusiness el valor tiene forma válida pero viola una regla de
	// negocio (piso de precio según categoría).
	KindBusiness Kind = "business"
)

// Failure describe la primera regla incumplida: campo, clase y mensaje
// listo para mostrar al usuario.
type Failure struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Error permite propagar la falla como error por los casos de uso.
func (f *Failure) Error() string {
	return f.Field + ": " + f.Message
}

// Result es el resultado de validar un registro: válido, o la primera falla.
type Result struct {
	failure *Failure
}

// Valid indica si el registro pasó todas las reglas.
func (r Result) Valid() bool { return r.failure == nil }

// Failure devuelve la primera falla, o nil si el registro es válido.
func (r Result) Failure() *Failure { return r.failure }

// rule es un par predicado+mensaje. Las reglas se evalúan en orden y la
// primera que devuelve false gana.
type rule struct {
	field   string
	kind    Kind
	ok      func() bool
	message string
}

func eval(rules []rule) Result {
	for _, ru := range rules {
		if !ru.ok() {
			return Result{failure: &Failure{Field: ru.field, Kind: ru.kind, Message: ru.message}}
		}
	}
	return Result{}
}
