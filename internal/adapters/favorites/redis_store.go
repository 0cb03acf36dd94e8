package favorites

import (
	"boulderhall-service/internal/ports"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis-backed favorites store: a plain string key holding the JSON array.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, key: ports.FavoritesKey}
}

func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: redis get %q: %w", s.key, err)
	}

	return decodeNames(b)
}

func (s *RedisStore) Save(ctx context.Context, names []string) error {
	b, err := encodeNames(names)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("save favorites: redis set %q: %w", s.key, err)
	}
	return nil
}
