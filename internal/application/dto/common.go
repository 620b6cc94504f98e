package dto

// ErrorResponse cuerpo de error HTTP. Field y Kind solo vienen en errores
// de validación (código VALIDATION).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// ListQuery parámetros de un listado: búsqueda, filtros exactos, orden y
// página. Los valores inválidos se normalizan en el motor, nunca fallan.
type ListQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"` // solo productos
	Role     string `query:"role"`     // solo usuarios
	State    string `query:"state"`    // A, I o vacío (todos)
	Sort     string `query:"sort"`
	Dir      string `query:"dir"` // asc (por defecto) o desc
	Page     int    `query:"page"`
	Size     int    `query:"size"`
}

// Descending interpreta el parámetro dir.
func (q ListQuery) Descending() bool { return q.Dir == "desc" }

// PageMeta metadatos de página para el paginador de la interfaz.
type PageMeta struct {
	Total        int   `json:"total"`
	TotalPages   int   `json:"total_pages"`
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	Start        int   `json:"start"`
	End          int   `json:"end"`
	VisiblePages []int `json:"visible_pages"`
}
