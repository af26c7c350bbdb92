package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
)

// Generator hands out random (v4) ids for users, homes, bookings and reviews.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)

// IsValid reports whether id parses as a UUID. Path ids are checked with it before hitting storage.
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
