package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DomainError for transport mapping.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
)

// DomainError is a classified business error. Sentinels below are compared with errors.Is.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, msg string) *DomainError {
	return &DomainError{Kind: kind, Message: msg}
}

var (
	ErrMissingFields    = newError(KindValidation, "missing required fields")
	ErrInvalidInput     = newError(KindValidation, "invalid input")
	ErrInvalidDateRange = newError(KindValidation, "check-out must be at least one night after check-in")
	ErrCapacityExceeded = newError(KindValidation, "number of guests exceeds the home's capacity")
	ErrInvalidRating    = newError(KindValidation, "rating must be between 1 and 5")
	ErrInvalidRole      = newError(KindValidation, "invalid role")

	ErrUserNotFound    = newError(KindNotFound, "user not found")
	ErrListingNotFound = newError(KindNotFound, "home not found")
	ErrBookingNotFound = newError(KindNotFound, "booking not found")
	ErrReviewNotFound  = newError(KindNotFound, "review not found")

	ErrMissingToken       = newError(KindUnauthorized, "access denied: no token provided")
	ErrInvalidToken       = newError(KindUnauthorized, "invalid token")
	ErrTokenExpired       = newError(KindUnauthorized, "token has expired")
	ErrRevokedToken       = newError(KindUnauthorized, "token has been invalidated")
	ErrInvalidCredentials = newError(KindUnauthorized, "invalid credentials")

	ErrForbidden            = newError(KindForbidden, "forbidden: you do not have the required permissions")
	ErrTokenListingMismatch = newError(KindForbidden, "review token was not issued for this home")
	ErrClientMismatch       = newError(KindForbidden, "review token does not match the booking client")

	ErrUserAlreadyExists        = newError(KindConflict, "user already exists")
	ErrReviewLinkAlreadyExists  = newError(KindConflict, "review link already exists for this booking")
	ErrReviewLinkNotGenerated   = newError(KindConflict, "review link has not been generated for this booking")
	ErrReviewAlreadySubmitted   = newError(KindConflict, "a review has already been submitted with this link")
	ErrVersionConflict          = newError(KindConflict, "document was modified concurrently")
	ErrConcurrentUpdateExceeded = newError(KindConflict, "too many concurrent updates, please retry")
)

// KindOf returns the kind of the first DomainError in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Wrap attaches detail to a sentinel while keeping it matchable with errors.Is.
func Wrap(sentinel *DomainError, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
