package usecase

import (
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// TokenService defines the interface for JWT operations.
// Parse methods return entity.ErrTokenExpired or entity.ErrInvalidToken on failure.
type TokenService interface {
	GenerateSessionToken(userID string, role entity.UserRole) (string, time.Time, error)
	ParseSessionToken(token string) (*entity.Claims, error)
	GenerateReviewToken(bookingID, homeID, clientEmail string) (string, error)
	ParseReviewToken(token string) (*entity.ReviewClaims, error)
}
