package storage

import (
	"context"
	"maps"
	"sync"

	"friendlylink/internal/registry/store"
)

// Memory keeps the encoded snapshot in process. Writes go through the codec
// so a later Read returns an independent aggregate.
type Memory struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read(ctx context.Context) (*store.FriendlyLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	snapshot := maps.Clone(m.buckets)
	m.mu.RUnlock()
	return Decode(snapshot)
}

func (m *Memory) Write(ctx context.Context, registry *store.FriendlyLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buckets, err := Encode(registry)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.buckets = buckets
	m.mu.Unlock()
	return nil
}

// Buckets exposes the stored payloads for inspection in tests.
func (m *Memory) Buckets() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.buckets)
}

// Put replaces one raw bucket payload.
func (m *Memory) Put(bucket string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buckets == nil {
		m.buckets = make(map[string][]byte)
	}
	m.buckets[bucket] = payload
}
