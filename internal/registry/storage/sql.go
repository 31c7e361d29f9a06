package storage

import (
	"context"
	"database/sql"
	"fmt"

	"friendlylink/internal/registry/store"
)

// sqlState stores one row per bucket. The dialects differ only in their
// statements.
type sqlState struct {
	db         *sql.DB
	selectStmt string
	upsertStmt string
}

func (s *sqlState) Read(ctx context.Context) (*store.FriendlyLink, error) {
	rows, err := s.db.QueryContext(ctx, s.selectStmt)
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	buckets := make(map[string][]byte, len(Buckets))
	for rows.Next() {
		var (
			bucket  string
			payload string
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		buckets[bucket] = []byte(payload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate state: %w", err)
	}
	return Decode(buckets)
}

// Write replaces all buckets in one transaction.
func (s *sqlState) Write(ctx context.Context, registry *store.FriendlyLink) error {
	buckets, err := Encode(registry)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, bucket := range Buckets {
		if _, err := tx.ExecContext(ctx, s.upsertStmt, bucket, string(buckets[bucket])); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
