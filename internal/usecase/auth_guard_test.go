package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	jwtinfra "github.com/mikiasgoitom/HomeStay/internal/infrastructure/jwt"
)

func TestAuthGuard_Authenticate(t *testing.T) {
	e := newEnv(t)
	valid, _, err := e.tokens.GenerateSessionToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)

	expiredMgr, err := jwtinfra.NewJWTManager("test-secret-0123456789", -time.Minute, time.Hour)
	require.NoError(t, err)
	expired, _, err := jwtinfra.NewTokenService(expiredMgr).GenerateSessionToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)

	otherMgr, err := jwtinfra.NewJWTManager("another-secret", time.Hour, time.Hour)
	require.NoError(t, err)
	foreign, _, err := jwtinfra.NewTokenService(otherMgr).GenerateSessionToken("user-1", entity.UserRoleAdmin)
	require.NoError(t, err)

	review, err := e.tokens.GenerateReviewToken("booking-1", "home-1", "guest@example.com")
	require.NoError(t, err)

	unknownRole, _, err := e.tokens.GenerateSessionToken("user-1", entity.UserRole("root"))
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
		want  error
	}{
		{"missing", "", entity.ErrMissingToken},
		{"garbage", "abc", entity.ErrInvalidToken},
		{"expired", expired, entity.ErrInvalidToken},
		{"wrong secret", foreign, entity.ErrInvalidToken},
		{"review token", review, entity.ErrInvalidToken},
		{"unknown role", unknownRole, entity.ErrInvalidToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.guard.Authenticate(context.Background(), tc.token)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	identity, err := e.guard.Authenticate(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, entity.Identity{UserID: "user-1", Role: entity.UserRoleUser}, *identity)
}

func TestAuthGuard_RevokedBeforeExpiry(t *testing.T) {
	e := newEnv(t)
	token, exp, err := e.tokens.GenerateSessionToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)

	require.NoError(t, e.revoked.Revoke(context.Background(), token, exp))
	_, err = e.guard.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, entity.ErrRevokedToken)
}

func TestAuthGuard_Authorize(t *testing.T) {
	e := newEnv(t)
	user := entity.Identity{UserID: "user-1", Role: entity.UserRoleUser}

	assert.ErrorIs(t, e.guard.Authorize(user, entity.UserRoleAdmin), entity.ErrForbidden)
	assert.NoError(t, e.guard.Authorize(user, entity.UserRoleUser, entity.UserRoleAdmin))
	assert.ErrorIs(t, e.guard.Authorize(user), entity.ErrForbidden)
}
