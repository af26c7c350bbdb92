package contract

import (
	"context"
	"time"
)

// IRevocationStore remembers signed-out session tokens until they expire.
type IRevocationStore interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
