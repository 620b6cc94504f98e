package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/application/ports"
	"github.com/restobar-app/restobar-api/internal/domain"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
	"github.com/restobar-app/restobar-api/internal/domain/listing"
	"github.com/restobar-app/restobar-api/internal/domain/repository"
	"github.com/restobar-app/restobar-api/internal/domain/validation"
)

// ProductUseCase casos de uso CRUD de productos: validación, alta y
// edición, listado vía el motor de presentación, baja/restauración lógica
// y reporte PDF. Ninguna falla de validación llega al repositorio.
type ProductUseCase struct {
	repo    repository.ProductRepository
	reports ports.ReportGenerator
	schema  listing.Schema[entity.Product]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, reports ports.ReportGenerator) *ProductUseCase {
	return &ProductUseCase{
		repo:    repo,
		reports: reports,
		schema:  listing.ProductSchema(),
	}
}

// Create valida y crea un producto. El id y la fecha de registro se
// asignan aquí; el cliente nunca los envía.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	rec := validation.ProductRecord{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if res := validation.ValidateProduct(&rec); !res.Valid() {
		return nil, res.Failure()
	}
	product := &entity.Product{
		ID:               uuid.New().String(),
		Category:         rec.Category,
		Name:             rec.Name,
		Description:      rec.Description,
		Price:            *rec.Price,
		Stock:            rec.Stock,
		RegistrationDate: time.Now(),
		State:            entity.StateActive,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update valida y actualiza un producto existente. El id es inmutable y
// la fecha de registro se conserva.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	rec := validation.ProductRecord{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
	}
	if res := validation.ValidateProduct(&rec); !res.Valid() {
		return nil, res.Failure()
	}
	product.Category = rec.Category
	product.Name = rec.Name
	product.Description = rec.Description
	product.Price = *rec.Price
	product.Stock = rec.Stock
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List carga la colección según el filtro de estado y la pasa por el motor
// de presentación (buscar, filtrar por categoría, ordenar, paginar).
func (uc *ProductUseCase) List(q dto.ListQuery) (*dto.ProductListResponse, error) {
	loaded, err := uc.load(q.State)
	if err != nil {
		return nil, err
	}
	page := listing.Apply(loaded, uc.schema, listing.Params{
		Search:     q.Search,
		Filters:    map[string]string{"category": q.Category},
		SortColumn: q.Sort,
		Descending: q.Descending(),
		Page:       q.Page,
		PageSize:   q.Size,
	})
	items := make([]dto.ProductResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *toProductResponse(&page.Items[i]))
	}
	return &dto.ProductListResponse{
		Items: items,
		Meta: dto.PageMeta{
			Total:        page.Total,
			TotalPages:   page.TotalPages,
			Page:         page.Page,
			PageSize:     page.PageSize,
			Start:        page.Start,
			End:          page.End,
			VisiblePages: page.VisiblePages,
		},
	}, nil
}

// ListByState devuelve los productos crudos con el estado dado.
func (uc *ProductUseCase) ListByState(state string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByState(state)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete baja lógica: estado a Inactivo, sin borrado físico.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.setState(id, entity.StateInactive)
}

// Restore restaura un producto dado de baja: estado a Activo.
func (uc *ProductUseCase) Restore(id string) error {
	return uc.setState(id, entity.StateActive)
}

// ReportPDF genera el reporte PDF de los productos activos.
func (uc *ProductUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.ListByState(entity.StateActive)
	if err != nil {
		return nil, err
	}
	return uc.reports.ProductsReport(ctx, list)
}

func (uc *ProductUseCase) setState(id, state string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetState(id, state)
}

func (uc *ProductUseCase) load(state string) ([]entity.Product, error) {
	var list []*entity.Product
	var err error
	if state == entity.StateActive || state == entity.StateInactive {
		list, err = uc.repo.ListByState(state)
	} else {
		list, err = uc.repo.ListAll()
	}
	if err != nil {
		return nil, err
	}
	loaded := make([]entity.Product, 0, len(list))
	for _, p := range list {
		loaded = append(loaded, *p)
	}
	return loaded, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID:        p.ID,
		Category:         p.Category,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Stock:            p.Stock,
		RegistrationDate: p.RegistrationDate,
		State:            p.State,
	}
}
