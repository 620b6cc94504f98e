package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/application/usecase"
	"github.com/restobar-app/restobar-api/internal/domain"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
	"github.com/restobar-app/restobar-api/internal/domain/validation"
)

func saveProductRequest() dto.SaveProductRequest {
	price := decimal.NewFromFloat(28.50)
	return dto.SaveProductRequest{
		Category:    entity.CategoryDish,
		Name:        "Lomo saltado",
		Description: "Lomo fino salteado con papas fritas",
		Price:       &price,
		Stock:       40,
	}
}

func TestProductCreate_AsignaIDFechaYEstado(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, &fakeReports{})

	resp, err := uc.Create(saveProductRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ProductID, "el backend asigna el id, el cliente nunca lo envía")
	assert.False(t, resp.RegistrationDate.IsZero(), "la fecha de registro se asigna al crear")
	assert.Equal(t, entity.StateActive, resp.State, "todo producto nace activo")
	assert.Len(t, repo.products, 1)
}

func TestProductCreate_ValidacionBloqueaElGuardado(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, &fakeReports{})

	in := saveProductRequest()
	precio := decimal.NewFromFloat(9.99)
	in.Price = &precio

	resp, err := uc.Create(in)

	require.Error(t, err)
	assert.Nil(t, resp)

	var failure *validation.Failure
	require.ErrorAs(t, err, &failure, "la falla de validación viaja como error tipado")
	assert.Equal(t, "price", failure.Field)
	assert.Equal(t, validation.KindBusiness, failure.Kind)
	assert.Empty(t, repo.products, "ninguna falla de validación llega al repositorio")
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})

	resp, err := uc.GetByID("no-existe")

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestProductUpdate_ConservaIDYFecha(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, &fakeReports{})
	created, err := uc.Create(saveProductRequest())
	require.NoError(t, err)

	in := saveProductRequest()
	in.Name = "Lomo saltado especial"
	updated, err := uc.Update(created.ProductID, in)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ProductID, updated.ProductID, "el id es inmutable")
	assert.Equal(t, created.RegistrationDate, updated.RegistrationDate,
		"la fecha de registro se conserva en la edición")
	assert.Equal(t, "Lomo saltado especial", updated.Name)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})

	resp, err := uc.Update("no-existe", saveProductRequest())

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestProductUpdate_ValidacionInvalida(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, &fakeReports{})
	created, err := uc.Create(saveProductRequest())
	require.NoError(t, err)

	in := saveProductRequest()
	in.Stock = 0
	resp, err := uc.Update(created.ProductID, in)

	require.Error(t, err)
	assert.Nil(t, resp)

	guardado, err := uc.GetByID(created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 40, guardado.Stock, "el registro guardado no cambia si la validación falla")
}

// ── Baja y restauración lógica ────────────────────────────────────────────────

func TestProductDeleteYRestore(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, &fakeReports{})
	created, err := uc.Create(saveProductRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ProductID))
	got, err := uc.GetByID(created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateInactive, got.State, "la baja es lógica: el registro sigue existiendo")

	require.NoError(t, uc.Restore(created.ProductID))
	got, err = uc.GetByID(created.ProductID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateActive, got.State)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})

	err := uc.Delete("no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Listado ───────────────────────────────────────────────────────────────────

// Nombres solo con letras: la regla de nombre de producto rechaza dígitos.
var seedNames = []string{
	"Producto Uno", "Producto Dos", "Producto Tres", "Producto Cuatro",
	"Producto Cinco", "Producto Seis", "Producto Siete", "Producto Ocho",
	"Producto Nueve", "Producto Diez", "Producto Once", "Producto Doce",
}

func seedProducts(t *testing.T, uc *usecase.ProductUseCase, n int) {
	t.Helper()
	require.LessOrEqual(t, n, len(seedNames))
	for i := 0; i < n; i++ {
		in := saveProductRequest()
		in.Name = seedNames[i]
		if i%2 == 1 {
			in.Category = entity.CategoryBeverage
		}
		_, err := uc.Create(in)
		require.NoError(t, err)
	}
}

func TestProductList_PaginaYMetadatos(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})
	seedProducts(t, uc, 12)

	resp, err := uc.List(dto.ListQuery{Page: 0, Size: 10})

	require.NoError(t, err)
	assert.Len(t, resp.Items, 10)
	assert.Equal(t, 12, resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Equal(t, 1, resp.Meta.Start)
	assert.Equal(t, 10, resp.Meta.End)
}

func TestProductList_FiltroPorCategoria(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})
	seedProducts(t, uc, 12)

	resp, err := uc.List(dto.ListQuery{Category: entity.CategoryBeverage, Size: 100})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.Meta.Total)
	for _, it := range resp.Items {
		assert.Equal(t, entity.CategoryBeverage, it.Category)
	}
}

func TestProductList_FiltroPorEstado(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})
	seedProducts(t, uc, 5)

	todos, err := uc.List(dto.ListQuery{Size: 100})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(todos.Items[0].ProductID))

	activos, err := uc.List(dto.ListQuery{State: entity.StateActive, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, 4, activos.Meta.Total)

	inactivos, err := uc.List(dto.ListQuery{State: entity.StateInactive, Size: 100})
	require.NoError(t, err)
	assert.Equal(t, 1, inactivos.Meta.Total)
}

func TestProductList_OrdenDescendente(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})
	seedProducts(t, uc, 5)

	resp, err := uc.List(dto.ListQuery{Sort: "name", Dir: "desc", Size: 100})

	require.NoError(t, err)
	require.Len(t, resp.Items, 5)
	// Con los cinco primeros nombres sembrados, "Producto Uno" es el mayor
	// en orden alfabético, así que encabeza el listado descendente.
	assert.Equal(t, "Producto Uno", resp.Items[0].Name)
}

func TestProductListByState(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeReports{})
	seedProducts(t, uc, 3)

	items, err := uc.ListByState(entity.StateActive)

	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestProductList_ErrorDelRepositorio(t *testing.T) {
	repo := &fakeProductRepo{failWith: errors.New("conexión caída")}
	uc := usecase.NewProductUseCase(repo, &fakeReports{})

	_, err := uc.List(dto.ListQuery{})

	assert.Error(t, err)
}

// ── Reporte PDF ───────────────────────────────────────────────────────────────

func TestProductReportPDF_SoloActivos(t *testing.T) {
	reports := &fakeReports{}
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, reports)
	seedProducts(t, uc, 4)

	todos, err := uc.List(dto.ListQuery{Size: 100})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(todos.Items[0].ProductID))

	pdf, err := uc.ReportPDF(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 3, reports.productCount, "el reporte cubre solo los productos activos")
}
