package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlylink/pkg/platform/sentinel"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "friendlylink.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	_, err = s.Read(ctx)
	require.ErrorIs(t, err, sentinel.ErrNoData)

	registry := sampleRegistry(t)
	require.NoError(t, s.Write(ctx, registry))
	require.NoError(t, s.Write(ctx, registry), "second write upserts")
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Read(ctx)
	require.NoError(t, err)
	assertSameRegistry(t, registry, got)
}

func TestSQLiteCorruptRow(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "fl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.db.ExecContext(ctx, `INSERT INTO registry_state(bucket, payload) VALUES('elderly', '[{"nric":"bad"}]')`)
	require.NoError(t, err)

	_, err = s.Read(ctx)
	assert.ErrorIs(t, err, sentinel.ErrDataConversion)
}
