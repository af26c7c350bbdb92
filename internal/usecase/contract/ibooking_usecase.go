package usecasecontract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// BookingInput is a booking request. Zero times and a nil Guests count as "not supplied".
type BookingInput struct {
	HomeID      string
	ClientName  string
	ClientEmail string
	ClientPhone string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      *int
}

// BookingResult is a stored booking plus a warning when the email could not be dispatched.
type BookingResult struct {
	Booking *entity.Booking
	Warning string
}

// PartialSuccess reports whether the booking was stored but its notification failed.
func (r *BookingResult) PartialSuccess() bool {
	return r != nil && r.Warning != ""
}

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, input BookingInput) (*BookingResult, error)
	GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error)
	ListBookings(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error)
	ListBookingSummaries(ctx context.Context, filter entity.BookingFilter) ([]entity.BookingSummary, error)
	CreateReviewLink(ctx context.Context, bookingID string) (string, error)
	SendReviewLink(ctx context.Context, bookingID string) (*BookingResult, error)
}
