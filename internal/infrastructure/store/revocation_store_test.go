package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	passwordservice "github.com/mikiasgoitom/HomeStay/internal/infrastructure/password_service"
)

func TestMemoryRevocationStore_RevokeAndCheck(t *testing.T) {
	s := NewMemoryRevocationStore(passwordservice.NewHasher())
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "token-a", time.Now().Add(time.Hour)))

	revoked, err = s.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = s.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryRevocationStore_PrunesExpired(t *testing.T) {
	s := NewMemoryRevocationStore(passwordservice.NewHasher())
	ctx := context.Background()
	base := time.Now()
	s.now = func() time.Time { return base }

	require.NoError(t, s.Revoke(ctx, "short", base.Add(time.Minute)))
	require.NoError(t, s.Revoke(ctx, "already-expired", base.Add(-time.Minute)))
	assert.Equal(t, 1, s.Len())

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	revoked, _ := s.IsRevoked(ctx, "short")
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "long", base.Add(time.Hour)))
	assert.Equal(t, 1, s.Len())
}

func TestMemoryRevocationStore_Concurrent(t *testing.T) {
	s := NewMemoryRevocationStore(passwordservice.NewHasher())
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("token-%d", i)
			_ = s.Revoke(ctx, token, exp)
			revoked, _ := s.IsRevoked(ctx, token)
			assert.True(t, revoked)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
