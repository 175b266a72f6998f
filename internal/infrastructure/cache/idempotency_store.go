package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/logistica-api/internal/application/ports"
)

var (
	_ ports.IdempotencyStore = (*RedisIdempotencyStore)(nil)
	_ ports.IdempotencyStore = (*MemoryIdempotencyStore)(nil)
)

const idempotencyKeyPrefix = "idempotency:"

// RedisIdempotencyStore claves Idempotency-Key compartidas entre instancias.
type RedisIdempotencyStore struct {
	client *redis.Client
}

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

// MarkProcessed SETNX con TTL: true si la clave es nueva, false si ya se había procesado.
func (s *RedisIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, idempotencyKeyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark idempotency key: %w", err)
	}
	return ok, nil
}

// Release borra la clave para permitir el reintento de una solicitud fallida.
func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) {
	_ = s.client.Del(ctx, idempotencyKeyPrefix+key).Err()
}

func (s *RedisIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, idempotencyKeyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("check idempotency key: %w", err)
	}
	return n > 0, nil
}

// MemoryIdempotencyStore variante en proceso para el driver memory y los tests.
// Las claves vencidas se descartan al consultarlas.
type MemoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{entries: map[string]time.Time{}, now: time.Now}
}

func (s *MemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if exp, ok := s.entries[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.entries[key] = now.Add(ttl)
	return true, nil
}

func (s *MemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	if !s.now().Before(exp) {
		delete(s.entries, key)
		return false, nil
	}
	return true, nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
