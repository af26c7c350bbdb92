package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "BOOKING_SURCHARGE_FACTOR", "SESSION_TOKEN_TTL_MINUTES", "REVIEW_TOKEN_TTL_HOURS", "ENFORCE_GUEST_CAPACITY", "REVOCATION_STORE"} {
		t.Setenv(key, "")
	}
	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1.04, cfg.GetBookingSurchargeFactor())
	assert.Equal(t, time.Hour, cfg.GetSessionTokenTTL())
	assert.Equal(t, 7*24*time.Hour, cfg.GetReviewTokenTTL())
	assert.True(t, cfg.GetEnforceGuestCapacity())
	assert.Equal(t, "memory", cfg.RevocationStore)
	assert.Equal(t, 10*time.Second, cfg.GetNotificationTimeout())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOOKING_SURCHARGE_FACTOR", "1.1")
	t.Setenv("SESSION_TOKEN_TTL_MINUTES", "15")
	t.Setenv("ENFORCE_GUEST_CAPACITY", "false")
	t.Setenv("EMAIL_PORT", "465")
	cfg := NewConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 1.1, cfg.GetBookingSurchargeFactor())
	assert.Equal(t, 15*time.Minute, cfg.GetSessionTokenTTL())
	assert.False(t, cfg.GetEnforceGuestCapacity())
	assert.Equal(t, 465, cfg.Email.Port)
}

func TestNewConfig_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("BOOKING_SURCHARGE_FACTOR", "lots")
	t.Setenv("SESSION_TOKEN_TTL_MINUTES", "soon")
	t.Setenv("ENFORCE_GUEST_CAPACITY", "maybe")
	cfg := NewConfig()

	assert.Equal(t, 1.04, cfg.GetBookingSurchargeFactor())
	assert.Equal(t, time.Hour, cfg.GetSessionTokenTTL())
	assert.True(t, cfg.GetEnforceGuestCapacity())
}

func TestGetters_GuardZeroValues(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 1.0, cfg.GetBookingSurchargeFactor())
	assert.Equal(t, 10*time.Second, cfg.GetNotificationTimeout())
}
