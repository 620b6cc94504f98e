// Package storage implementa el almacenamiento de imágenes de perfil en
// disco local, detrás del puerto ports.ImageStore.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/restobar-app/restobar-api/internal/application/ports"
	"github.com/restobar-app/restobar-api/internal/domain"
)

var _ ports.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore guarda las imágenes en un directorio configurado.
// Los nombres se reducen a su base para impedir rutas fuera del directorio.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore construye el almacén y asegura que el directorio exista.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save escribe la imagen y devuelve la ruta persistida.
func (s *LocalImageStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	path := filepath.Join(s.dir, sanitize(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return path, nil
}

// Open abre una imagen por su nombre de archivo.
func (s *LocalImageStore) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, sanitize(filename)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("abrir imagen: %w", err)
	}
	return f, nil
}

func sanitize(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == ".." {
		return "_"
	}
	return base
}
