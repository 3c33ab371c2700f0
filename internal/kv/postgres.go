package kv

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresStore implements Store over a single kv_entries table. It uses
// database/sql with parameterized queries and contains no business logic.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed store. The kv_entries table is
// created by the migration package at startup.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ Store = (*PostgresStore)(nil)

func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM kv_entries WHERE key = $1`
	var value string
	if err := p.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := p.db.ExecContext(ctx, q, key, value)
	return err
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_entries WHERE key = $1`
	res, err := p.db.ExecContext(ctx, q, key)
	if err != nil {
		return err
	}
	// Deleting an absent key is not an error.
	_, _ = res.RowsAffected()
	return nil
}
