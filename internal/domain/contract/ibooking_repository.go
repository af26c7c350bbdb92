package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// IBookingRepository persists bookings. Lookups return entity.ErrBookingNotFound when nothing matches.
type IBookingRepository interface {
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	GetBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error)
	ListBookings(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error)
	// SetReviewLinkIfAbsent stores the link only when the booking has none yet,
	// returning entity.ErrReviewLinkAlreadyExists otherwise.
	SetReviewLinkIfAbsent(ctx context.Context, bookingID, link string) error
	MarkReviewLinkSent(ctx context.Context, bookingID string, at time.Time) error
	// MarkReviewed sets reviewed_at once, returning entity.ErrReviewAlreadySubmitted on a second call.
	MarkReviewed(ctx context.Context, bookingID string, at time.Time) error
	// ClearReviewed undoes MarkReviewed when the review itself could not be stored.
	ClearReviewed(ctx context.Context, bookingID string) error
}
