// Package redisstore persists the cached identity in Redis. It is the
// durable key-value store rendition: one serialized record under a
// fixed key, absence meaning logged out.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/ports"
)

const defaultKey = "eventshell:identity"

// Store is a Redis-backed session store holding a single identity record.
type Store struct {
	client redis.UniversalClient
	key    string
}

var _ ports.SessionStore = (*Store)(nil)

// NewStore creates a Redis-backed session store under the default key.
func NewStore(client redis.UniversalClient) *Store {
	return &Store{
		client: client,
		key:    defaultKey,
	}
}

// NewStoreWithKey creates a Redis session store with a custom storage key.
func NewStoreWithKey(client redis.UniversalClient, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{
		client: client,
		key:    key,
	}
}

func (s *Store) Save(ctx context.Context, ident auth.Identity) error {
	data, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *Store) Load(ctx context.Context) (auth.Identity, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Identity{}, ports.ErrNoSession
		}
		return auth.Identity{}, fmt.Errorf("redis get: %w", err)
	}

	var ident auth.Identity
	if unmarshalErr := json.Unmarshal([]byte(data), &ident); unmarshalErr != nil {
		return auth.Identity{}, ports.ErrMalformedSession
	}
	return ident, nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
