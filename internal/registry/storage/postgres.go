package storage

import (
	"context"
	"database/sql"
	"fmt"

	"friendlylink/migrations"
)

// Postgres persists the buckets as JSONB rows. The caller owns the *sql.DB.
type Postgres struct {
	sqlState
}

// NewPostgres applies the embedded migrations and returns the store.
func NewPostgres(ctx context.Context, db *sql.DB) (*Postgres, error) {
	if err := migrations.Apply(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Postgres{sqlState{
		db:         db,
		selectStmt: `SELECT bucket, payload::text FROM registry_state`,
		upsertStmt: `INSERT INTO registry_state (bucket, payload, updated_at)
			VALUES ($1, $2::jsonb, NOW())
			ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
	}}, nil
}
