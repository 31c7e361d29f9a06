package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"friendlylink/internal/registry/store"
)

// JSONFiles persists each bucket to its own file.
type JSONFiles struct {
	paths map[string]string
}

// NewJSONFiles maps the three buckets to file paths.
func NewJSONFiles(elderlyPath, volunteerPath, pairPath string) *JSONFiles {
	return &JSONFiles{paths: map[string]string{
		BucketElderly:    elderlyPath,
		BucketVolunteers: volunteerPath,
		BucketPairs:      pairPath,
	}}
}

// Read loads all files concurrently. Missing files count as empty buckets;
// when none of them exist the result is sentinel.ErrNoData.
func (s *JSONFiles) Read(ctx context.Context) (*store.FriendlyLink, error) {
	var mu sync.Mutex
	buckets := make(map[string][]byte, len(s.paths))

	g, ctx := errgroup.WithContext(ctx)
	for bucket, path := range s.paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			payload, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			mu.Lock()
			buckets[bucket] = payload
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Decode(buckets)
}

// Write encodes once and writes the files concurrently. Each file is replaced
// atomically through a temp file in the same directory.
func (s *JSONFiles) Write(ctx context.Context, registry *store.FriendlyLink) error {
	buckets, err := Encode(registry)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for bucket, path := range s.paths {
		payload := buckets[bucket]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeAtomic(path, payload)
		})
	}
	return g.Wait()
}

func writeAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
