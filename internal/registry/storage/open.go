// Package storage persists the registry aggregate. Every backend stores the
// same three JSON buckets produced by Encode.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"friendlylink/internal/platform/config"
	"friendlylink/internal/platform/database"
	"friendlylink/internal/platform/redis"
	"friendlylink/internal/registry/store"
	dErrors "friendlylink/pkg/domain-errors"
)

// Backend is the read/write contract every store satisfies.
type Backend interface {
	Read(ctx context.Context) (*store.FriendlyLink, error)
	Write(ctx context.Context, registry *store.FriendlyLink) error
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// Open builds the backend named by cfg.Storage.Driver, bounded by
// cfg.StorageTimeout per call. The returned closer releases connections.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (Backend, io.Closer, error) {
	sc := cfg.Storage
	var (
		backend Backend
		closer  io.Closer = nopCloser
	)
	switch sc.Driver {
	case config.DriverJSON:
		backend = NewJSONFiles(sc.ElderlyFile, sc.VolunteerFile, sc.PairFile)
	case config.DriverMemory:
		backend = NewMemory()
	case config.DriverSQLite:
		s, err := OpenSQLite(ctx, sc.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		backend, closer = s, s
	case config.DriverPostgres:
		pool, err := database.New(ctx, database.DefaultConfig(sc.DatabaseURL))
		if err != nil {
			return nil, nil, err
		}
		s, err := NewPostgres(ctx, pool.DB())
		if err != nil {
			pool.Close() //nolint:errcheck // best-effort cleanup on init failure
			return nil, nil, err
		}
		backend, closer = s, pool
	case config.DriverRedis:
		client, err := redis.New(ctx, sc.Redis, reg)
		if err != nil {
			return nil, nil, err
		}
		backend, closer = NewRedis(client.Client, sc.Redis.Key), client
	case config.DriverS3:
		s, err := OpenS3(ctx, sc.S3)
		if err != nil {
			return nil, nil, err
		}
		backend = s
	default:
		return nil, nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("unknown storage driver %q", sc.Driver))
	}

	if logger != nil {
		logger.Info("storage opened", "driver", sc.Driver)
	}
	return WithTimeout(backend, cfg.StorageTimeout), closer, nil
}

// WithTimeout bounds every call on b. Expired calls fail with CodeTimeout.
func WithTimeout(b Backend, d time.Duration) Backend {
	if d <= 0 {
		return b
	}
	return &timeoutBackend{next: b, timeout: d}
}

type timeoutBackend struct {
	next    Backend
	timeout time.Duration
}

func (t *timeoutBackend) Read(ctx context.Context) (*store.FriendlyLink, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	registry, err := t.next.Read(ctx)
	return registry, timeoutErr(err, "read")
}

func (t *timeoutBackend) Write(ctx context.Context, registry *store.FriendlyLink) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return timeoutErr(t.next.Write(ctx, registry), "write")
}

func timeoutErr(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "storage "+op+" timed out")
	}
	return err
}
