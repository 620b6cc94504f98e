package listing

// View mantiene los parámetros de una pantalla de listado sobre la última
// colección cargada, con la misma semántica que la tabla original:
// cambiar búsqueda, filtros o tamaño de página vuelve a la primera página;
// reordenar por la columna activa invierte la dirección; la navegación
// recorta en los bordes en lugar de fallar.
//
// La colección pertenece en exclusiva a la vista entre una carga y la
// siguiente; el motor nunca la muta.
type View[T any] struct {
	schema Schema[T]
	items  []T
	params Params
}

// NewView construye una vista vacía con el esquema y tamaño de página dados.
func NewView[T any](schema Schema[T], pageSize int) *View[T] {
	return &View[T]{
		schema: schema,
		params: Params{PageSize: pageSize, Filters: map[string]string{}},
	}
}

// Load reemplaza la colección (tras una recarga del backend) y vuelve a la
// primera página. Búsqueda, filtros y orden activos se conservan.
func (v *View[T]) Load(items []T) {
	v.items = items
	v.params.Page = 0
}

// SetSearch fija el término de búsqueda y vuelve a la primera página.
func (v *View[T]) SetSearch(term string) {
	v.params.Search = term
	v.params.Page = 0
}

// SetFilter fija un filtro exacto por campo; valor vacío lo desactiva.
// Vuelve a la primera página.
func (v *View[T]) SetFilter(field, value string) {
	if value == "" {
		delete(v.params.Filters, field)
	} else {
		v.params.Filters[field] = value
	}
	v.params.Page = 0
}

// SortBy selecciona la columna de orden. Si ya era la columna activa,
// invierte la dirección; si es nueva, ordena ascendente.
func (v *View[T]) SortBy(column string) {
	if v.params.SortColumn == column {
		v.params.Descending = !v.params.Descending
		return
	}
	v.params.SortColumn = column
	v.params.Descending = false
}

// SetPageSize cambia el tamaño de página y vuelve a la primera página.
func (v *View[T]) SetPageSize(size int) {
	v.params.PageSize = size
	v.params.Page = 0
}

// Next avanza una página sin pasar de la última.
func (v *View[T]) Next() {
	page := v.Render()
	if page.Page < page.TotalPages-1 {
		v.params.Page = page.Page + 1
	} else {
		v.params.Page = page.Page
	}
}

// Previous retrocede una página sin pasar de la primera.
func (v *View[T]) Previous() {
	page := v.Render()
	if page.Page > 0 {
		v.params.Page = page.Page - 1
	} else {
		v.params.Page = 0
	}
}

// GoTo salta a la página indicada, recortada al rango válido.
func (v *View[T]) GoTo(page int) {
	v.params.Page = page
	v.params.Page = v.Render().Page
}

// Params devuelve una copia de los parámetros vigentes.
func (v *View[T]) Params() Params {
	p := v.params
	p.Filters = make(map[string]string, len(v.params.Filters))
	for k, val := range v.params.Filters {
		p.Filters[k] = val
	}
	return p
}

// Render aplica el pipeline con los parámetros vigentes.
func (v *View[T]) Render() Page[T] {
	return Apply(v.items, v.schema, v.params)
}
