package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

func TestHasher_PasswordRoundTrip(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	hashed, err := h.HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hashed)

	assert.NoError(t, h.ComparePasswordHash("Secret123!", hashed))
	assert.ErrorIs(t, h.ComparePasswordHash("wrong", hashed), entity.ErrInvalidCredentials)
}

func TestHasher_HashString(t *testing.T) {
	h := NewHasher()
	assert.Equal(t, "", h.HashString(""))
	assert.Len(t, h.HashString("token"), 64)
	assert.Equal(t, h.HashString("token"), h.HashString("token"))
	assert.NotEqual(t, h.HashString("token"), h.HashString("other"))
}
