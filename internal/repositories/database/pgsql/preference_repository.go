package pgsql

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferenceRepository stores client preferences in the client_preferences table.
type PgxPreferenceRepository struct {
	BaseRepository
}

// NewPgxPreferenceRepository creates a new repository for preference data.
func NewPgxPreferenceRepository(pool *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PreferenceStore = (*PgxPreferenceRepository)(nil)

// GetItem retrieves the value stored under key.
func (r *PgxPreferenceRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM client_preferences
		WHERE pref_key = $1;
	`
	var value string
	err := r.Pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to find preference %s: %w", key, err)
	}
	return value, true, nil
}

// SetItem inserts or overwrites the value stored under key.
func (r *PgxPreferenceRepository) SetItem(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO client_preferences (pref_key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (pref_key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}
