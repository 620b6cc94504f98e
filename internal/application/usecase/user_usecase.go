package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/restobar-app/restobar-api/internal/application/dto"
	"github.com/restobar-app/restobar-api/internal/application/ports"
	"github.com/restobar-app/restobar-api/internal/domain"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
	"github.com/restobar-app/restobar-api/internal/domain/listing"
	"github.com/restobar-app/restobar-api/internal/domain/repository"
	"github.com/restobar-app/restobar-api/internal/domain/validation"
)

// UserUseCase casos de uso CRUD de usuarios: validación, hash de
// contraseña, listado vía el motor de presentación, baja/restauración
// lógica, reporte PDF e imagen de perfil.
type UserUseCase struct {
	repo    repository.UserRepository
	reports ports.ReportGenerator
	images  ports.ImageStore
	schema  listing.Schema[entity.User]
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, reports ports.ReportGenerator, images ports.ImageStore) *UserUseCase {
	return &UserUseCase{
		repo:    repo,
		reports: reports,
		images:  images,
		schema:  listing.UserSchema(),
	}
}

// Create valida y crea un usuario. La contraseña se hashea con bcrypt
// antes de persistir y nunca vuelve en respuestas.
func (uc *UserUseCase) Create(in dto.SaveUserRequest) (*dto.UserResponse, error) {
	rec := userRecord(in, true)
	if res := validation.ValidateUser(&rec); !res.Valid() {
		return nil, res.Failure()
	}
	existing, err := uc.repo.GetByEmail(rec.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(rec.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	user := &entity.User{
		ID:               uuid.New().String(),
		DocumentType:     rec.DocumentType,
		DocumentNumber:   rec.DocumentNumber,
		Name:             rec.Name,
		LastName:         rec.LastName,
		Cellphone:        rec.Cellphone,
		Email:            rec.Email,
		PasswordHash:     string(hash),
		Role:             rec.Role,
		RegistrationDate: time.Now(),
		State:            entity.StateActive,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update valida y actualiza un usuario existente. Contraseña vacía
// conserva el hash almacenado.
func (uc *UserUseCase) Update(id string, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	rec := userRecord(in, false)
	if res := validation.ValidateUser(&rec); !res.Valid() {
		return nil, res.Failure()
	}
	if !strings.EqualFold(rec.Email, user.Email) {
		existing, err := uc.repo.GetByEmail(rec.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	user.DocumentType = rec.DocumentType
	user.DocumentNumber = rec.DocumentNumber
	user.Name = rec.Name
	user.LastName = rec.LastName
	user.Cellphone = rec.Cellphone
	user.Email = rec.Email
	user.Role = rec.Role
	if rec.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(rec.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash de contraseña: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List carga la colección según el filtro de estado y la pasa por el motor
// de presentación (buscar, filtrar por rol, ordenar, paginar).
func (uc *UserUseCase) List(q dto.ListQuery) (*dto.UserListResponse, error) {
	loaded, err := uc.load(q.State)
	if err != nil {
		return nil, err
	}
	page := listing.Apply(loaded, uc.schema, listing.Params{
		Search:     q.Search,
		Filters:    map[string]string{"role": q.Role},
		SortColumn: q.Sort,
		Descending: q.Descending(),
		Page:       q.Page,
		PageSize:   q.Size,
	})
	items := make([]dto.UserResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *toUserResponse(&page.Items[i]))
	}
	return &dto.UserListResponse{
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

// ListByState devuelve los usuarios crudos con el estado dado.
func (uc *UserUseCase) ListByState(state string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByState(state)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Delete baja lógica: estado a Inactivo, sin borrado físico.
func (uc *UserUseCase) Delete(id string) error {
	return uc.setState(id, entity.StateInactive)
}

// Restore restaura un usuario dado de baja: estado a Activo.
func (uc *UserUseCase) Restore(id string) error {
	return uc.setState(id, entity.StateActive)
}

// ReportPDF genera el reporte PDF de los usuarios activos.
func (uc *UserUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.ListByState(entity.StateActive)
	if err != nil {
		return nil, err
	}
	return uc.reports.UsersReport(ctx, list)
}

// UploadImage guarda la imagen de perfil y asocia su ruta al usuario.
// El nombre en disco es un uuid con la extensión original.
func (uc *UserUseCase) UploadImage(ctx context.Context, id, filename string, content io.Reader) (string, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrNotFound
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	path, err := uc.images.Save(ctx, name, content)
	if err != nil {
		return "", err
	}
	if err := uc.repo.UpdateImagePath(id, path); err != nil {
		return "", err
	}
	return path, nil
}

// OpenImage sirve una imagen por su nombre de archivo.
func (uc *UserUseCase) OpenImage(ctx context.Context, filename string) (io.ReadCloser, error) {
	return uc.images.Open(ctx, filename)
}

func (uc *UserUseCase) setState(id, state string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetState(id, state)
}

func (uc *UserUseCase) load(state string) ([]entity.User, error) {
	var list []*entity.User
	var err error
	if state == entity.StateActive || state == entity.StateInactive {
		list, err = uc.repo.ListByState(state)
	} else {
		list, err = uc.repo.ListAll()
	}
	if err != nil {
		return nil, err
	}
	loaded := make([]entity.User, 0, len(list))
	for _, u := range list {
		loaded = append(loaded, *u)
	}
	return loaded, nil
}

func userRecord(in dto.SaveUserRequest, isNew bool) validation.UserRecord {
	return validation.UserRecord{
		Name:           in.Name,
		LastName:       in.LastName,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Cellphone:      in.Cellphone,
		Email:          in.Email,
		Password:       in.Password,
		Role:           in.Role,
		IsNew:          isNew,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		UsersID:          u.ID,
		DocumentType:     u.DocumentType,
		DocumentNumber:   u.DocumentNumber,
		Name:             u.Name,
		LastName:         u.LastName,
		Cellphone:        u.Cellphone,
		Email:            u.Email,
		Role:             u.Role,
		RegistrationDate: u.RegistrationDate,
		State:            u.State,
		ImagePath:        u.ImagePath,
	}
}
