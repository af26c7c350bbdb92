package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewJWTManager_EmptySecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour, time.Hour)
	assert.Error(t, err)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := NewTokenService(newTestManager(t))

	token, exp, err := svc.GenerateSessionToken("user-1", entity.UserRoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)
}

func TestSessionTokens_AreUnique(t *testing.T) {
	svc := NewTokenService(newTestManager(t))
	a, _, err := svc.GenerateSessionToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)
	b, _, err := svc.GenerateSessionToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestReviewToken_RoundTrip(t *testing.T) {
	svc := NewTokenService(newTestManager(t))

	token, err := svc.GenerateReviewToken("booking-1", "home-1", "guest@example.com")
	require.NoError(t, err)

	claims, err := svc.ParseReviewToken(token)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", claims.BookingID)
	assert.Equal(t, "home-1", claims.HomeID)
	assert.Equal(t, "guest@example.com", claims.ClientEmail)
}

func TestTokenTypes_AreNotInterchangeable(t *testing.T) {
	svc := NewTokenService(newTestManager(t))

	session, _, err := svc.GenerateSessionToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)
	review, err := svc.GenerateReviewToken("booking-1", "home-1", "guest@example.com")
	require.NoError(t, err)

	_, err = svc.ParseReviewToken(session)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
	_, err = svc.ParseSessionToken(review)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestParse_ExpiredToken(t *testing.T) {
	m := newTestManager(t)
	m.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := m.GenerateReviewToken("booking-1", "home-1", "guest@example.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.VerifyReviewToken(token)
	assert.ErrorIs(t, err, entity.ErrTokenExpired)
}

func TestParse_WrongSecretOrGarbage(t *testing.T) {
	other, err := NewJWTManager("other-secret", time.Hour, time.Hour)
	require.NoError(t, err)
	token, _, err := other.GenerateSessionToken("user-1", "user")
	require.NoError(t, err)

	m := newTestManager(t)
	_, err = m.VerifySessionToken(token)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)

	_, err = m.VerifySessionToken("not-a-jwt")
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestParse_RejectsNoneAlgorithm(t *testing.T) {
	claims := CustomClaims{
		Role:      "admin",
		TokenType: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestManager(t).VerifySessionToken(token)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}
