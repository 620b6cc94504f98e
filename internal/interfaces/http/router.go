package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restobar-app/restobar-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	UserUC       *usecase.UserUseCase
	PreferenceUC *usecase.PreferenceUseCase
}

// Router registra las rutas de la API. Los paths conservan el contrato
// que consumía el front-end original (incluido el `/estado/` de usuarios).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/v1/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/pdf", productHandler.ReportPDF)
	products.Get("/state/:state", productHandler.ListByState)
	products.Post("/save", productHandler.Create)
	products.Delete("/delete/:id", productHandler.Delete)
	products.Put("/restore/:id", productHandler.Restore)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/pdf", userHandler.ReportPDF)
	users.Get("/estado/:state", userHandler.ListByState)
	users.Get("/images/:filename", userHandler.GetImage)
	users.Post("/save", userHandler.Create)
	users.Put("/update/:id", userHandler.Update)
	users.Patch("/delete/:id", userHandler.Delete)
	users.Patch("/restore/:id", userHandler.Restore)
	users.Post("/:id/upload-image", userHandler.UploadImage)
	users.Get("/:id", userHandler.GetByID)

	preferences := api.Group("/preferences")
	preferenceHandler := NewPreferenceHandler(deps.PreferenceUC)
	preferences.Get("/:owner/:key", preferenceHandler.Get)
	preferences.Put("/:owner/:key", preferenceHandler.Set)
}
