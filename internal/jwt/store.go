package jwt

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKV is the subset of the redis client used by the store.
type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisTokenStore keeps refresh token IDs in Redis with a TTL.
type RedisTokenStore struct {
	client redisKV
}

// NewRedisTokenStore creates a store backed by the given Redis client.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func refreshKey(jti string) string {
	return "refresh_token:" + jti
}

func (s *RedisTokenStore) Store(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(jti), strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, refreshKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, jti string) error {
	return s.client.Del(ctx, refreshKey(jti)).Err()
}

// MemoryTokenStore is the in-process fallback used when Redis is not
// configured. Entries expire lazily on lookup.
type MemoryTokenStore struct {
	mu    sync.Mutex
	items map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{items: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Store(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if jti == "" {
		return nil
	}
	s.items[jti] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Exists(ctx context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(s.items, jti)
		return false, nil
	}
	return true, nil
}

func (s *MemoryTokenStore) Revoke(ctx context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, jti)
	return nil
}
