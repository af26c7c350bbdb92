package mocks

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

type MockBookingUsecase struct {
	ShouldFailNotification bool
	CreateErr              error

	LastInput  usecasecontract.BookingInput
	LastFilter entity.BookingFilter
	Bookings   map[string]*entity.Booking
}

var _ usecasecontract.IBookingUseCase = (*MockBookingUsecase)(nil)

func NewMockBookingUsecase() *MockBookingUsecase {
	return &MockBookingUsecase{
		Bookings: map[string]*entity.Booking{
			"booking-1": {ID: "booking-1", HomeID: "home-1", ClientName: "Abebe", ClientEmail: "abebe@example.com", TotalPrice: 312},
		},
	}
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, input usecasecontract.BookingInput) (*usecasecontract.BookingResult, error) {
	m.LastInput = input
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	b := &entity.Booking{ID: "booking-new", HomeID: input.HomeID, ClientName: input.ClientName, ClientEmail: input.ClientEmail, TotalPrice: 312}
	result := &usecasecontract.BookingResult{Booking: b}
	if m.ShouldFailNotification {
		result.Warning = "booking saved but the notification email could not be sent"
	}
	return result, nil
}

func (m *MockBookingUsecase) GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	b, ok := m.Bookings[bookingID]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	return b, nil
}

func (m *MockBookingUsecase) ListBookings(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	m.LastFilter = filter
	var out []*entity.Booking
	for _, b := range m.Bookings {
		if filter.HomeID == "" || b.HomeID == filter.HomeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockBookingUsecase) ListBookingSummaries(ctx context.Context, filter entity.BookingFilter) ([]entity.BookingSummary, error) {
	bookings, _ := m.ListBookings(ctx, filter)
	out := make([]entity.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, entity.BookingSummary{BookingID: b.ID, HomeID: b.HomeID, HomeName: "Lake House", TotalPrice: b.TotalPrice})
	}
	return out, nil
}

func (m *MockBookingUsecase) CreateReviewLink(ctx context.Context, bookingID string) (string, error) {
	b, err := m.GetBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if b.HasReviewLink() {
		return "", entity.ErrReviewLinkAlreadyExists
	}
	b.ReviewLink = "http://localhost:8080/api/v1/homes/home-1/review-link?token=abc"
	return b.ReviewLink, nil
}

func (m *MockBookingUsecase) SendReviewLink(ctx context.Context, bookingID string) (*usecasecontract.BookingResult, error) {
	b, err := m.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.HasReviewLink() {
		return nil, entity.ErrReviewLinkNotGenerated
	}
	result := &usecasecontract.BookingResult{Booking: b}
	if m.ShouldFailNotification {
		result.Warning = "review link could not be sent"
	}
	return result, nil
}
