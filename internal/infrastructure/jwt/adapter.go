package jwt

import (
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/usecase"
)

// TokenServiceAdapter adapts JWTManager to the usecase.TokenService interface.
type TokenServiceAdapter struct {
	mgr *JWTManager
}

// NewTokenService creates a new usecase.TokenService from JWTManager
func NewTokenService(mgr *JWTManager) usecase.TokenService {
	return &TokenServiceAdapter{mgr: mgr}
}

// GenerateSessionToken issues a session token for a user.
func (a *TokenServiceAdapter) GenerateSessionToken(userID string, role entity.UserRole) (string, time.Time, error) {
	return a.mgr.GenerateSessionToken(userID, string(role))
}

// ParseSessionToken validates a session token and returns Claims.
func (a *TokenServiceAdapter) ParseSessionToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifySessionToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           customClaims.Subject,
		Role:             entity.UserRole(customClaims.Role),
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}

func (a *TokenServiceAdapter) GenerateReviewToken(bookingID, homeID, clientEmail string) (string, error) {
	return a.mgr.GenerateReviewToken(bookingID, homeID, clientEmail)
}

// ParseReviewToken validates a review token and returns its booking binding.
func (a *TokenServiceAdapter) ParseReviewToken(tokenStr string) (*entity.ReviewClaims, error) {
	customClaims, err := a.mgr.VerifyReviewToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.ReviewClaims{
		BookingID:        customClaims.BookingID,
		HomeID:           customClaims.HomeID,
		ClientEmail:      customClaims.ClientEmail,
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
