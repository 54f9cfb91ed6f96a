package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks consumed reset-token jtis so each reset link works
// exactly once.
type TokenStore interface {
	// Consume marks jti as used for ttl. It returns false when the jti was
	// already consumed.
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
	// Release undoes a Consume so the jti can be retried. Used when the
	// work the token authorized did not happen.
	Release(ctx context.Context, jti string) error
}

// InMemoryTokenStore is a TokenStore for tests and single-process setups.
type InMemoryTokenStore struct {
	mu   sync.Mutex
	used map[string]time.Time
}

func NewInMemoryTokenStore() *InMemoryTokenStore {
	return &InMemoryTokenStore{used: map[string]time.Time{}}
}

func (s *InMemoryTokenStore) Consume(_ context.Context, jti string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, exp := range s.used {
		if now.After(exp) {
			delete(s.used, k)
		}
	}
	if _, ok := s.used[jti]; ok {
		return false, nil
	}
	s.used[jti] = now.Add(ttl)
	return true, nil
}

func (s *InMemoryTokenStore) Release(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.used, jti)
	return nil
}

// RedisTokenStore backs Consume with SETNX so consumption stays atomic
// across instances.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, "pwdreset:used:"+jti, 1, ttl).Result()
}

func (s *RedisTokenStore) Release(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, "pwdreset:used:"+jti).Err()
}
