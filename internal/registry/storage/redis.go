package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"friendlylink/internal/registry/store"
)

// Redis persists the buckets as fields of one hash.
type Redis struct {
	client redis.UniversalClient
	key    string
}

func NewRedis(client redis.UniversalClient, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (s *Redis) Read(ctx context.Context) (*store.FriendlyLink, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", s.key, err)
	}
	buckets := make(map[string][]byte, len(fields))
	for bucket, payload := range fields {
		buckets[bucket] = []byte(payload)
	}
	return Decode(buckets)
}

// Write replaces the hash atomically.
func (s *Redis) Write(ctx context.Context, registry *store.FriendlyLink) error {
	buckets, err := Encode(registry)
	if err != nil {
		return err
	}
	values := make([]any, 0, 2*len(Buckets))
	for _, bucket := range Buckets {
		values = append(values, bucket, buckets[bucket])
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		pipe.HSet(ctx, s.key, values...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("hset %s: %w", s.key, err)
	}
	return nil
}
