package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// savePrefix namespaces slot keys in a shared Redis instance.
const savePrefix = "save:"

// RedisStore keeps slots as save:<slot> string keys. Saves have no TTL;
// an abandoned game should still be loadable.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ SaveStore = (*RedisStore)(nil)

// NewRedisStore connects to the given address.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{client: client, logger: logger}
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Put(ctx context.Context, slot string, data []byte) error {
	if slot == "" {
		return fmt.Errorf("invalid slot name %q", slot)
	}
	if err := s.client.Set(ctx, savePrefix+slot, data, 0).Err(); err != nil {
		s.logger.Error("failed to save slot", "slot", slot, "error", err)
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, slot string) ([]byte, error) {
	data, err := s.client.Get(ctx, savePrefix+slot).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("failed to load slot", "slot", slot, "error", err)
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return data, nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var slots []string
	iter := s.client.Scan(ctx, 0, savePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		slots = append(slots, strings.TrimPrefix(iter.Val(), savePrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	sort.Strings(slots)
	return slots, nil
}

func (s *RedisStore) Delete(ctx context.Context, slot string) error {
	n, err := s.client.Del(ctx, savePrefix+slot).Result()
	if err != nil {
		return fmt.Errorf("deleting slot %s: %w", slot, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
