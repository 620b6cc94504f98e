package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/restobar-app/restobar-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo implementación del puerto PreferenceRepository sobre
// PostgreSQL: una fila por (owner, key).
type PreferenceRepo struct {
	q Querier
}

// NewPreferenceRepository construye el adaptador de preferencias.
func NewPreferenceRepository(q Querier) *PreferenceRepo {
	return &PreferenceRepo{q: q}
}

// Get devuelve el valor de la preferencia y si está fijada. Un valor
// vacío fijado explícitamente se devuelve como encontrado.
func (r *PreferenceRepo) Get(owner, key string) (string, bool, error) {
	var value string
	err := r.q.QueryRow(context.Background(),
		`SELECT value FROM ui_preferences WHERE owner_id = $1 AND key = $2`,
		owner, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get preference: %w", err)
	}
	return value, true, nil
}

// Set fija el valor de la preferencia, reemplazando el anterior si existe.
func (r *PreferenceRepo) Set(owner, key, value string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO ui_preferences (owner_id, key, value) VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		owner, key, value,
	)
	if err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}
