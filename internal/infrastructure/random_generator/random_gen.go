package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
)

// RandomGenerator produces URL-safe secrets, such as the bootstrap admin password.
type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)

// GenerateRandomToken returns n random bytes encoded as unpadded base64url.
func (rg *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("token length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
