package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/restobar-app/restobar-api/internal/domain"
	"github.com/restobar-app/restobar-api/internal/domain/entity"
	"github.com/restobar-app/restobar-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category, name, description, price, stock, registration_date, state`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Category, product.Name, product.Description,
		product.Price, product.Stock, product.RegistrationDate, product.State,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Category, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.RegistrationDate, &p.State,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll lista todos los productos en orden de registro descendente.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY registration_date DESC`
	return r.list(query)
}

// ListByState lista los productos con el estado dado (A o I).
func (r *ProductRepo) ListByState(state string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE state = $1 ORDER BY registration_date DESC`
	return r.list(query, state)
}

// Update actualiza un producto existente. El id y la fecha de registro no cambian.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category = $2, name = $3, description = $4, price = $5, stock = $6, state = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Category, product.Name, product.Description,
		product.Price, product.Stock, product.State,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetState cambia el estado lógico del producto (baja o restauración).
func (r *ProductRepo) SetState(id, state string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET state = $2 WHERE id = $1`, id, state)
	if err != nil {
		return fmt.Errorf("set product state: %w", err)
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.RegistrationDate, &p.State); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
