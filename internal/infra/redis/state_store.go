package redis

import (
	"context"
	"time"

	"envybase/internal/domain/service"
	"envybase/internal/errors"
	"envybase/internal/infra/auth/oauth"

	goredis "github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "oauth:state:"

// StateStore keeps OAuth state values in Redis so every instance can complete
// a flow another instance started.
type StateStore struct {
	client *goredis.Client
	prefix string
}

// NewStateStore returns the Redis store when a client is configured and the
// in-memory store otherwise.
func NewStateStore(client *goredis.Client) service.StateStore {
	if client == nil {
		return oauth.NewMemoryStateStore()
	}

	return NewRedisStateStore(client)
}

// NewRedisStateStore creates a Redis-backed state store.
func NewRedisStateStore(client *goredis.Client) *StateStore {
	return &StateStore{client: client, prefix: stateKeyPrefix}
}

func (s *StateStore) key(state string) string {
	return s.prefix + state
}

// Save stores the provider name under the state key with ttl.
func (s *StateStore) Save(ctx context.Context, state, provider string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(state), provider, ttl).Err(); err != nil {
		return errors.Wrap(err, "save oauth state")
	}

	return nil
}

// Consume reads and deletes the state in one round trip.
func (s *StateStore) Consume(ctx context.Context, state string) (string, error) {
	provider, err := s.client.GetDel(ctx, s.key(state)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", service.ErrStateNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "consume oauth state")
	}

	return provider, nil
}
