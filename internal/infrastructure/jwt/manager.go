package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

const (
	tokenTypeSession = "session"
	tokenTypeReview  = "review"
	issuer           = "homestay"
)

// CustomClaims are the claims of a session token. Subject carries the user id.
type CustomClaims struct {
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// ReviewTokenClaims bind a review token to one booking.
type ReviewTokenClaims struct {
	BookingID   string `json:"booking_id"`
	HomeID      string `json:"home_id"`
	ClientEmail string `json:"client_email"`
	TokenType   string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens.
type JWTManager struct {
	secret     []byte
	sessionTTL time.Duration
	reviewTTL  time.Duration
	now        func() time.Time
}

func NewJWTManager(secret string, sessionTTL, reviewTTL time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &JWTManager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		reviewTTL:  reviewTTL,
		now:        time.Now,
	}, nil
}

func (m *JWTManager) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := m.now()
	return jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// GenerateSessionToken issues a session token and returns its expiry.
func (m *JWTManager) GenerateSessionToken(userID, role string) (string, time.Time, error) {
	claims := CustomClaims{
		Role:             role,
		TokenType:        tokenTypeSession,
		RegisteredClaims: m.registered(userID, m.sessionTTL),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// GenerateReviewToken issues a review token for a booking.
func (m *JWTManager) GenerateReviewToken(bookingID, homeID, clientEmail string) (string, error) {
	claims := ReviewTokenClaims{
		BookingID:        bookingID,
		HomeID:           homeID,
		ClientEmail:      clientEmail,
		TokenType:        tokenTypeReview,
		RegisteredClaims: m.registered(bookingID, m.reviewTTL),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign review token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken parses a session token. Review tokens are rejected.
func (m *JWTManager) VerifySessionToken(tokenStr string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	if err := m.parse(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeSession || claims.Subject == "" {
		return nil, entity.ErrInvalidToken
	}
	return claims, nil
}

// VerifyReviewToken parses a review token. Session tokens are rejected.
func (m *JWTManager) VerifyReviewToken(tokenStr string) (*ReviewTokenClaims, error) {
	claims := &ReviewTokenClaims{}
	if err := m.parse(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeReview || claims.BookingID == "" || claims.HomeID == "" {
		return nil, entity.ErrInvalidToken
	}
	return claims, nil
}

func (m *JWTManager) parse(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.ErrTokenExpired
		}
		return entity.ErrInvalidToken
	}
	if !token.Valid {
		return entity.ErrInvalidToken
	}
	return nil
}
