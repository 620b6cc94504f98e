package usecase_test

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia, reportes e imágenes.
// Conservan el orden de inserción para que los listados sean deterministas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	failWith error
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	clone := *p
	f.products = append(f.products, &clone)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.products, nil
}

func (f *fakeProductRepo) ListByState(state string) ([]*entity.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.State == state {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range f.products {
		if existing.ID == p.ID {
			clone := *p
			f.products[i] = &clone
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) SetState(id, state string) error {
	for _, p := range f.products {
		if p.ID == id {
			p.State = state
		}
	}
	return nil
}

type fakeUserRepo struct {
	users    []*entity.User
	failWith error
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	clone := *u
	f.users = append(f.users, &clone)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAll() ([]*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users, nil
}

func (f *fakeUserRepo) ListByState(state string) ([]*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		if u.State == state {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range f.users {
		if existing.ID == u.ID {
			clone := *u
			f.users[i] = &clone
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) SetState(id, state string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.State = state
		}
	}
	return nil
}

func (f *fakeUserRepo) UpdateImagePath(id, imagePath string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.ImagePath = imagePath
		}
	}
	return nil
}

type fakePreferenceRepo struct {
	values map[string]string
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{values: map[string]string{}}
}

func (f *fakePreferenceRepo) Get(owner, key string) (string, bool, error) {
	value, found := f.values[owner+"/"+key]
	return value, found, nil
}

func (f *fakePreferenceRepo) Set(owner, key, value string) error {
	f.values[owner+"/"+key] = value
	return nil
}

// fakeReports registra con cuántos registros se pidió cada reporte y
// devuelve un PDF de mentira.
type fakeReports struct {
	productCount int
	userCount    int
}

func (f *fakeReports) ProductsReport(_ context.Context, products []*entity.Product) ([]byte, error) {
	f.productCount = len(products)
	return []byte("%PDF-productos"), nil
}

func (f *fakeReports) UsersReport(_ context.Context, users []*entity.User) ([]byte, error) {
	f.userCount = len(users)
	return []byte("%PDF-usuarios"), nil
}

// fakeImageStore guarda las imágenes en un mapa por nombre de archivo.
type fakeImageStore struct {
	saved map[string][]byte
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: map[string][]byte{}}
}

func (f *fakeImageStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.saved[filename] = data
	return "uploads/" + filename, nil
}

func (f *fakeImageStore) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	data, ok := f.saved[filename]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
