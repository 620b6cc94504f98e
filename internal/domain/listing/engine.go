// Package listing implementa el pipeline de presentación de listados:
// filtrar → ordenar → paginar. Es un motor genérico parametrizado por un
// esquema de campos por tipo de entidad, en lugar de duplicar la lógica
// en cada pantalla.
//
// El motor es puro y determinista: para una colección y unos parámetros
// fijos siempre produce la misma página. Ninguna operación falla; los
// parámetros inválidos (página negativa, tamaño cero) se normalizan o se
// recortan en lugar de devolver error, porque esto es lógica de
// presentación y no una frontera de servicio.
package listing

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// DefaultPageSize tamaño de página cuando el llamador no indica uno válido.
	DefaultPageSize = 10
	// maxPageSize tope del tamaño de página aceptado.
	maxPageSize = 100
	// maxVisiblePages ancho máximo de la ventana del paginador.
	maxVisiblePages = 5
)

// Kind clase de comparación de un campo.
type Kind int

const (
	Text    Kind = iota // comparación de texto, insensible a mayúsculas
	Numeric             // comparación numérica (decimal)
	Time                // comparación de fechas; fecha ausente ordena primero
)

// Field describe un campo de la entidad ante el motor: cómo se compara,
// si participa en la búsqueda y cómo se extrae su valor.
type Field[T any] struct {
	Kind       Kind
	Searchable bool
	Text       func(T) string
	Number     func(T) decimal.Decimal
	Time       func(T) time.Time
}

// Schema tabla de accesores de campo por nombre de columna.
type Schema[T any] map[string]Field[T]

// Params parámetros de una invocación del motor.
type Params struct {
	Search     string            // término de búsqueda; vacío = sin filtro
	Filters    map[string]string // filtros exactos por campo; vacío = sin filtro
	SortColumn string            // columna de orden; vacía = orden de carga
	Descending bool
	Page       int // índice de página, base 0
	PageSize   int
}

// Page página renderizada más los metadatos para el paginador.
type Page[T any] struct {
	Items        []T   `json:"items"`
	Total        int   `json:"total"`       // registros tras el filtrado
	TotalPages   int   `json:"total_pages"` // ceil(Total / PageSize)
	Page         int   `json:"page"`        // página efectiva tras el recorte
	PageSize     int   `json:"page_size"`
	Start        int   `json:"start"` // rango 1-based para "mostrando X–Y de Z"
	End          int   `json:"end"`
	VisiblePages []int `json:"visible_pages"` // ventana de a lo sumo 5 páginas
}

// Apply ejecuta filtrado, ordenamiento estable y paginación sobre la
// colección. No modifica la colección de entrada.
func Apply[T any](items []T, schema Schema[T], p Params) Page[T] {
	filtered := filter(items, schema, p)

	if f, ok := schema[p.SortColumn]; ok {
		sortItems(filtered, f, p.Descending)
	}

	return paginate(filtered, p)
}

func filter[T any](items []T, schema Schema[T], p Params) []T {
	term := strings.ToLower(strings.TrimSpace(p.Search))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if term != "" && !matchesSearch(it, schema, term) {
			continue
		}
		if !matchesFilters(it, schema, p.Filters) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// matchesSearch: el término aparece como subcadena, sin distinguir
// mayúsculas, en alguno de los campos marcados como buscables.
func matchesSearch[T any](it T, schema Schema[T], term string) bool {
	for _, f := range schema {
		if !f.Searchable || f.Text == nil {
			continue
		}
		if strings.Contains(strings.ToLower(f.Text(it)), term) {
			return true
		}
	}
	return false
}

// matchesFilters: cada filtro activo exige igualdad exacta (sin distinguir
// mayúsculas) sobre su campo; un filtro sin valor se cumple trivialmente.
func matchesFilters[T any](it T, schema Schema[T], filters map[string]string) bool {
	for name, want := range filters {
		if want == "" {
			continue
		}
		f, ok := schema[name]
		if !ok || f.Text == nil {
			continue
		}
		if !strings.EqualFold(f.Text(it), want) {
			return false
		}
	}
	return true
}

// sortItems ordena en sitio con orden estable: los empates conservan el
// orden que dejó el filtrado.
func sortItems[T any](items []T, f Field[T], descending bool) {
	var less func(a, b T) bool
	switch f.Kind {
	case Numeric:
		less = func(a, b T) bool { return f.Number(a).LessThan(f.Number(b)) }
	case Time:
		less = func(a, b T) bool { return f.Time(a).Before(f.Time(b)) }
	default:
		col := collate.New(language.Spanish, collate.IgnoreCase)
		less = func(a, b T) bool { return col.CompareString(f.Text(a), f.Text(b)) < 0 }
	}
	sort.SliceStable(items, func(i, j int) bool {
		if descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func paginate[T any](filtered []T, p Params) Page[T] {
	size := p.PageSize
	if size <= 0 || size > maxPageSize {
		size = DefaultPageSize
	}

	total := len(filtered)
	totalPages := (total + size - 1) / size

	page := p.Page
	if page < 0 {
		page = 0
	}
	if totalPages > 0 && page >= totalPages {
		page = totalPages - 1
	}
	if totalPages == 0 {
		page = 0
	}

	start := page * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := Page[T]{
		Items:        filtered[start:end],
		Total:        total,
		TotalPages:   totalPages,
		Page:         page,
		PageSize:     size,
		VisiblePages: visiblePages(page, totalPages),
	}
	if total > 0 {
		out.Start = start + 1
		out.End = end
	}
	return out
}

// visiblePages devuelve la ventana de números de página del paginador:
// a lo sumo 5, centrada en la página actual.
func visiblePages(page, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	start := 0
	end := totalPages - 1
	if totalPages > maxVisiblePages {
		start = page - maxVisiblePages/2
		if start < 0 {
			start = 0
		}
		end = start + maxVisiblePages - 1
		if end > totalPages-1 {
			end = totalPages - 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
