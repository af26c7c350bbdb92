package entity

import "github.com/golang-jwt/jwt/v5"

// Claims are the decoded contents of a session token.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// ReviewClaims bind a review token to one booking, home and client.
type ReviewClaims struct {
	BookingID   string `json:"booking_id"`
	HomeID      string `json:"home_id"`
	ClientEmail string `json:"client_email"`
	jwt.RegisteredClaims
}
