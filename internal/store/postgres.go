package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps values in the kv_store table (see postgres.EnsureSchema).
type Postgres struct{ DB *pgxpool.Pool }

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var v string
	err := p.DB.QueryRow(ctx, `SELECT value::text FROM kv_store WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.DB.Exec(ctx, `
		INSERT INTO kv_store(key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, string(value))
	return err
}
