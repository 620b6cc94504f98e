package ports

import (
	"context"
	"io"
)

// ImageStore puerto para el almacenamiento de imágenes de perfil.
// Save devuelve la ruta persistida; Open sirve la imagen por nombre.
type ImageStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}
