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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, document_type, document_number, name, last_name, cellphone, email, password_hash, role, registration_date, state, image_path`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.DocumentType, user.DocumentNumber, user.Name, user.LastName,
		user.Cellphone, user.Email, user.PasswordHash, user.Role,
		user.RegistrationDate, user.State, user.ImagePath,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.one(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.one(`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// ListAll lista todos los usuarios en orden de registro descendente.
func (r *UserRepo) ListAll() ([]*entity.User, error) {
	return r.list(`SELECT ` + userColumns + ` FROM users ORDER BY registration_date DESC`)
}

// ListByState lista los usuarios con el estado dado (A o I).
func (r *UserRepo) ListByState(state string) ([]*entity.User, error) {
	return r.list(`SELECT `+userColumns+` FROM users WHERE state = $1 ORDER BY registration_date DESC`, state)
}

// Update actualiza un usuario existente. El id y la fecha de registro no cambian.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET document_type = $2, document_number = $3, name = $4, last_name = $5,
			cellphone = $6, email = $7, password_hash = $8, role = $9, state = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.DocumentType, user.DocumentNumber, user.Name, user.LastName,
		user.Cellphone, user.Email, user.PasswordHash, user.Role, user.State,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetState cambia el estado lógico del usuario (baja o restauración).
func (r *UserRepo) SetState(id, state string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET state = $2 WHERE id = $1`, id, state)
	if err != nil {
		return fmt.Errorf("set user state: %w", err)
	}
	return nil
}

// UpdateImagePath asocia la ruta de la imagen de perfil al usuario.
func (r *UserRepo) UpdateImagePath(id, imagePath string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET image_path = $2 WHERE id = $1`, id, imagePath)
	if err != nil {
		return fmt.Errorf("update user image: %w", err)
	}
	return nil
}

func (r *UserRepo) one(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.DocumentType, &u.DocumentNumber, &u.Name, &u.LastName,
		&u.Cellphone, &u.Email, &u.PasswordHash, &u.Role,
		&u.RegistrationDate, &u.State, &u.ImagePath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) list(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.DocumentType, &u.DocumentNumber, &u.Name, &u.LastName,
			&u.Cellphone, &u.Email, &u.PasswordHash, &u.Role,
			&u.RegistrationDate, &u.State, &u.ImagePath); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
