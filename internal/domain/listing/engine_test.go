package listing_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
	"github.com/restobar-app/restobar-api/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Motor de listados: filtrar → ordenar → paginar. El pipeline es puro y
// determinista; los parámetros inválidos se normalizan en lugar de fallar.
// ──────────────────────────────────────────────────────────────────────────────

// buildProducts genera n productos con nombre "Producto 01", "Producto 02", ...
// y fechas de registro crecientes.
func buildProducts(n int) []entity.Product {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]entity.Product, 0, n)
	for i := 0; i < n; i++ {
		category := entity.CategoryDish
		if i%2 == 1 {
			category = entity.CategoryBeverage
		}
		out = append(out, entity.Product{
			ID:               fmt.Sprintf("p-%02d", i+1),
			Category:         category,
			Name:             fmt.Sprintf("Producto %02d", i+1),
			Description:      "Descripción de prueba",
			Price:            decimal.NewFromInt(int64(10 + i)),
			Stock:            5 + i,
			RegistrationDate: base.Add(time.Duration(i) * time.Hour),
			State:            entity.StateActive,
		})
	}
	return out
}

func TestApply_DocePorDiezSonDosPaginas(t *testing.T) {
	page := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Page: 0, PageSize: 10,
	})

	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.TotalPages, "12 registros con páginas de 10 son 2 páginas")
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.Start, "la primera página muestra del 1 al 10")
	assert.Equal(t, 10, page.End)

	segunda := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Page: 1, PageSize: 10,
	})
	assert.Len(t, segunda.Items, 2, "la segunda página tiene los 2 restantes")
	assert.Equal(t, 11, segunda.Start)
	assert.Equal(t, 12, segunda.End)
}

func TestApply_PaginaFueraDeRangoSeRecorta(t *testing.T) {
	page := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Page: 5, PageSize: 10,
	})

	assert.Equal(t, 1, page.Page, "la página 5 se recorta a la última página real")
	assert.Len(t, page.Items, 2)
}

func TestApply_PaginaNegativaYTamanoInvalido(t *testing.T) {
	page := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Page: -3, PageSize: 0,
	})

	assert.Equal(t, 0, page.Page, "la página negativa se recorta a la primera")
	assert.Equal(t, listing.DefaultPageSize, page.PageSize,
		"el tamaño inválido cae al tamaño por defecto")

	page = listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		PageSize: 500,
	})
	assert.Equal(t, listing.DefaultPageSize, page.PageSize,
		"un tamaño mayor al tope también cae al tamaño por defecto")
}

func TestApply_ColeccionVacia(t *testing.T) {
	page := listing.Apply(nil, listing.ProductSchema(), listing.Params{PageSize: 10})

	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Start, "sin registros el rango mostrado es 0–0")
	assert.Equal(t, 0, page.End)
	assert.Empty(t, page.VisiblePages)
}

// ── Búsqueda y filtros ────────────────────────────────────────────────────────

func TestApply_BusquedaInsensibleAMayusculas(t *testing.T) {
	items := buildProducts(12)
	items[3].Name = "Ceviche clásico"

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		Search: "CEVICHE", PageSize: 10,
	})

	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Ceviche clásico", page.Items[0].Name)
}

func TestApply_BusquedaConEspaciosLaterales(t *testing.T) {
	items := buildProducts(5)

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		Search: "  producto 03  ", PageSize: 10,
	})

	require.Equal(t, 1, page.Total, "el término se recorta antes de buscar")
	assert.Equal(t, "Producto 03", page.Items[0].Name)
}

func TestApply_FiltroExactoPorCategoria(t *testing.T) {
	page := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Filters:  map[string]string{"category": entity.CategoryBeverage},
		PageSize: 10,
	})

	assert.Equal(t, 6, page.Total)
	for _, it := range page.Items {
		assert.Equal(t, entity.CategoryBeverage, it.Category)
	}
}

func TestApply_FiltroVacioNoFiltra(t *testing.T) {
	page := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Filters:  map[string]string{"category": ""},
		PageSize: 10,
	})

	assert.Equal(t, 12, page.Total, "un filtro sin valor se cumple trivialmente")
}

func TestApply_BusquedaSinResultados(t *testing.T) {
	page := listing.Apply(buildProducts(12), listing.ProductSchema(), listing.Params{
		Search: "no existe", PageSize: 10,
	})

	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

// ── Orden ─────────────────────────────────────────────────────────────────────

func TestApply_OrdenNumericoPorPrecio(t *testing.T) {
	items := buildProducts(5)

	asc := listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "price", PageSize: 10,
	})
	for i := 1; i < len(asc.Items); i++ {
		assert.True(t, asc.Items[i-1].Price.LessThanOrEqual(asc.Items[i].Price),
			"el orden ascendente por precio debe ser no decreciente")
	}

	desc := listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "price", Descending: true, PageSize: 10,
	})
	for i := 1; i < len(desc.Items); i++ {
		assert.True(t, desc.Items[i-1].Price.GreaterThanOrEqual(desc.Items[i].Price))
	}
}

func TestApply_OrdenTextoInsensibleAMayusculas(t *testing.T) {
	items := []entity.Product{
		{ID: "1", Name: "zanahoria glaseada"},
		{ID: "2", Name: "Ají de gallina"},
		{ID: "3", Name: "ceviche"},
	}

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "name", PageSize: 10,
	})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "Ají de gallina", page.Items[0].Name)
	assert.Equal(t, "ceviche", page.Items[1].Name)
	assert.Equal(t, "zanahoria glaseada", page.Items[2].Name)
}

func TestApply_OrdenPorFecha(t *testing.T) {
	items := buildProducts(5)

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "registration_date", Descending: true, PageSize: 10,
	})

	require.Len(t, page.Items, 5)
	assert.Equal(t, "Producto 05", page.Items[0].Name,
		"descendente por fecha: el registrado más tarde va primero")
}

func TestApply_OrdenEstableEnEmpates(t *testing.T) {
	items := []entity.Product{
		{ID: "a", Name: "Uno", Price: decimal.NewFromInt(10)},
		{ID: "b", Name: "Dos", Price: decimal.NewFromInt(10)},
		{ID: "c", Name: "Tres", Price: decimal.NewFromInt(10)},
	}

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "price", PageSize: 10,
	})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "a", page.Items[0].ID, "los empates conservan el orden de carga")
	assert.Equal(t, "b", page.Items[1].ID)
	assert.Equal(t, "c", page.Items[2].ID)
}

func TestApply_ColumnaDeOrdenDesconocidaNoOrdena(t *testing.T) {
	items := buildProducts(3)

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "inexistente", PageSize: 10,
	})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "p-01", page.Items[0].ID, "sin columna válida se conserva el orden de carga")
}

func TestApply_InvertirOrdenNoCambiaElConjunto(t *testing.T) {
	items := buildProducts(7)
	params := listing.Params{Search: "producto", SortColumn: "name", PageSize: 100}

	asc := listing.Apply(items, listing.ProductSchema(), params)
	params.Descending = true
	desc := listing.Apply(items, listing.ProductSchema(), params)

	require.Equal(t, asc.Total, desc.Total,
		"invertir la dirección de orden no altera el conjunto filtrado")
	ids := func(items []entity.Product) map[string]bool {
		m := make(map[string]bool, len(items))
		for _, it := range items {
			m[it.ID] = true
		}
		return m
	}
	assert.Equal(t, ids(asc.Items), ids(desc.Items))
}

// ── Determinismo y pureza ─────────────────────────────────────────────────────

func TestApply_EsDeterminista(t *testing.T) {
	items := buildProducts(12)
	params := listing.Params{
		Search: "producto", SortColumn: "price", Descending: true, Page: 1, PageSize: 5,
	}

	p1 := listing.Apply(items, listing.ProductSchema(), params)
	p2 := listing.Apply(items, listing.ProductSchema(), params)

	assert.Equal(t, p1, p2, "la misma colección y parámetros siempre producen la misma página")
}

func TestApply_NoMutaLaColeccionDeEntrada(t *testing.T) {
	items := buildProducts(5)
	original := make([]entity.Product, len(items))
	copy(original, items)

	listing.Apply(items, listing.ProductSchema(), listing.Params{
		SortColumn: "price", Descending: true, PageSize: 2,
	})

	assert.Equal(t, original, items, "el motor no debe reordenar la colección del llamador")
}

// ── Ventana del paginador ─────────────────────────────────────────────────────

func TestApply_VentanaDePaginasCentrada(t *testing.T) {
	// 95 registros con páginas de 10 son 10 páginas (0..9).
	items := buildProducts(95)

	page := listing.Apply(items, listing.ProductSchema(), listing.Params{
		Page: 5, PageSize: 10,
	})
	assert.Equal(t, []int{3, 4, 5, 6, 7}, page.VisiblePages,
		"la ventana de 5 páginas se centra en la página actual")

	primera := listing.Apply(items, listing.ProductSchema(), listing.Params{
		Page: 0, PageSize: 10,
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, primera.VisiblePages,
		"en el borde izquierdo la ventana arranca en 0")

	ultima := listing.Apply(items, listing.ProductSchema(), listing.Params{
		Page: 9, PageSize: 10,
	})
	assert.Contains(t, ultima.VisiblePages, 9, "la última página siempre es visible en el borde derecho")
}

func TestApply_VentanaConPocasPaginas(t *testing.T) {
	page := listing.Apply(buildProducts(25), listing.ProductSchema(), listing.Params{
		Page: 1, PageSize: 10,
	})

	assert.Equal(t, []int{0, 1, 2}, page.VisiblePages,
		"con 3 páginas totales la ventana las lista todas")
}

// ── Esquema de usuarios ───────────────────────────────────────────────────────

func TestApply_UsuariosBusquedaPorApellido(t *testing.T) {
	users := []entity.User{
		{ID: "u1", Name: "María", LastName: "Quispe", Email: "maria@gmail.com", Role: "Administrador"},
		{ID: "u2", Name: "Jorge", LastName: "Ramírez", Email: "jorge@hotmail.com", Role: "Mesero"},
	}

	page := listing.Apply(users, listing.UserSchema(), listing.Params{
		Search: "ramírez", PageSize: 10,
	})

	require.Equal(t, 1, page.Total)
	assert.Equal(t, "u2", page.Items[0].ID)
}

func TestApply_UsuariosFiltroPorRol(t *testing.T) {
	users := []entity.User{
		{ID: "u1", LastName: "Quispe", Role: "Administrador"},
		{ID: "u2", LastName: "Ramírez", Role: "Mesero"},
		{ID: "u3", LastName: "Flores", Role: "mesero"},
	}

	page := listing.Apply(users, listing.UserSchema(), listing.Params{
		Filters:  map[string]string{"role": "Mesero"},
		PageSize: 10,
	})

	assert.Equal(t, 2, page.Total, "el filtro exacto no distingue mayúsculas")
}
