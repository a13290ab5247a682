package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore реализует Store поверх таблицы kv_slots в PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore создаёт новый экземпляр PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query := `
		SELECT value
		FROM kv_slots
		WHERE key = $1
	`

	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get slot %q: %w", key, err)
	}

	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set slot %q: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_slots
		WHERE key = $1
	`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
