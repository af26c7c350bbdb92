package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
)

// Tokens are stored by fingerprint so the raw bearer value never sits in memory or Redis.

// MemoryRevocationStore is the default, process-local revocation set.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	hasher  contract.IHasher
	now     func() time.Time
}

func NewMemoryRevocationStore(hasher contract.IHasher) *MemoryRevocationStore {
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
		hasher:  hasher,
		now:     time.Now,
	}
}

var _ contract.IRevocationStore = (*MemoryRevocationStore)(nil)

func (s *MemoryRevocationStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	key := s.hasher.HashString(token)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, exp := range s.entries {
		if !exp.After(now) {
			delete(s.entries, k)
		}
	}
	if expiresAt.After(now) {
		s.entries[key] = expiresAt
	}
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	key := s.hasher.HashString(token)

	s.mu.RLock()
	exp, ok := s.entries[key]
	s.mu.RUnlock()
	return ok && exp.After(s.now()), nil
}

// Len is the number of live entries, used by tests.
func (s *MemoryRevocationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// RedisRevocationStore keeps revocations across restarts. Each key expires with its token.
type RedisRevocationStore struct {
	rdb    *redis.Client
	hasher contract.IHasher
}

func NewRedisRevocationStore(rdb *redis.Client, hasher contract.IHasher) *RedisRevocationStore {
	return &RedisRevocationStore{rdb: rdb, hasher: hasher}
}

var _ contract.IRevocationStore = (*RedisRevocationStore)(nil)

func revokedKey(fingerprint string) string { return fmt.Sprintf("auth:revoked:%s", fingerprint) }

func (s *RedisRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKey(s.hasher.HashString(token)), 1, ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKey(s.hasher.HashString(token))).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
