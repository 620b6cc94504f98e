package ports

import (
	"context"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
)

// ReportGenerator puerto para la generación de reportes PDF descargables.
type ReportGenerator interface {
	ProductsReport(ctx context.Context, products []*entity.Product) ([]byte, error)
	UsersReport(ctx context.Context, users []*entity.User) ([]byte, error)
}
