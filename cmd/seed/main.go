// Seed carga datos de demostración (carta y usuarios iniciales) en la
// base configurada. Pensado para entornos de desarrollo; las filas ya
// existentes no se duplican porque los correos son únicos.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/restobar-app/restobar-api/internal/domain/entity"
	"github.com/restobar-app/restobar-api/internal/infrastructure/postgres"
	"github.com/restobar-app/restobar-api/pkg/config"
	"github.com/restobar-app/restobar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now()
	products := []*entity.Product{
		{Category: entity.CategoryDish, Name: "Lomo saltado", Description: "Lomo fino salteado con cebolla, tomate y papas fritas", Price: decimal.NewFromFloat(28.50), Stock: 40},
		{Category: entity.CategoryDish, Name: "Ají de gallina", Description: "Pechuga deshilachada en crema de ají amarillo", Price: decimal.NewFromFloat(24.00), Stock: 35},
		{Category: entity.CategoryDish, Name: "Ceviche clásico", Description: "Pescado del día en leche de tigre con camote y choclo", Price: decimal.NewFromFloat(32.00), Stock: 25},
		{Category: entity.CategoryBeverage, Name: "Chicha morada", Description: "Refresco de maíz morado con piña y canela", Price: decimal.NewFromFloat(6.00), Stock: 120},
		{Category: entity.CategoryBeverage, Name: "Limonada helada", Description: "Limonada natural con hielo y hierbabuena", Price: decimal.NewFromFloat(5.50), Stock: 100},
	}
	for _, p := range products {
		p.ID = uuid.New().String()
		p.RegistrationDate = now
		p.State = entity.StateActive
		if err := productRepo.Create(p); err != nil {
			log.Warn().Err(err).Str("name", p.Name).Msg("producto no insertado")
			continue
		}
		log.Info().Str("name", p.Name).Msg("producto creado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin#2024"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	users := []*entity.User{
		{DocumentType: entity.DocumentDNI, DocumentNumber: "45871236", Name: "María", LastName: "Quispe", Cellphone: "987654321", Email: "maria.quispe@gmail.com", Role: "Administrador"},
		{DocumentType: entity.DocumentDNI, DocumentNumber: "72658413", Name: "Jorge", LastName: "Ramírez", Cellphone: "912345678", Email: "jorge.ramirez@hotmail.com", Role: "Mesero"},
	}
	for _, u := range users {
		u.ID = uuid.New().String()
		u.PasswordHash = string(hash)
		u.RegistrationDate = now
		u.State = entity.StateActive
		if err := userRepo.Create(u); err != nil {
			log.Warn().Err(err).Str("email", u.Email).Msg("usuario no insertado")
			continue
		}
		log.Info().Str("email", u.Email).Msg("usuario creado")
	}

	log.Info().Msg("seed completado")
}
