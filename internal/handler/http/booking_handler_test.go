package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
)

func bookingRequest() dto.CreateBookingRequest {
	guests := 2
	return dto.CreateBookingRequest{
		HomeID:      "home-1",
		ClientName:  "Abebe",
		ClientEmail: "abebe@example.com",
		CheckIn:     "2025-03-01",
		CheckOut:    "2025-03-04T00:00:00Z",
		Guests:      &guests,
	}
}

func TestCreateBooking_Public(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/bookings", "", bookingRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotContains(t, body, "warning")
	assert.Equal(t, 3, s.bookings.LastInput.CheckOut.Day()-s.bookings.LastInput.CheckIn.Day())
	require.NotNil(t, s.bookings.LastInput.Guests)
	assert.Equal(t, 2, *s.bookings.LastInput.Guests)
}

func TestCreateBooking_NotificationFailureIsPartialSuccess(t *testing.T) {
	s := newTestServer()
	s.bookings.ShouldFailNotification = true
	w := s.do(http.MethodPost, "/api/v1/bookings", "", bookingRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "booking saved but the notification email could not be sent", body["warning"])
	assert.NotNil(t, body["booking"])
}

func TestCreateBooking_BadDate(t *testing.T) {
	s := newTestServer()
	req := bookingRequest()
	req.CheckIn = "first of march"
	w := s.do(http.MethodPost, "/api/v1/bookings", "", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "check_in")
}

func TestCreateBooking_DomainErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"missing fields", entity.ErrMissingFields, http.StatusBadRequest},
		{"unknown home", entity.ErrListingNotFound, http.StatusNotFound},
		{"capacity", entity.ErrCapacityExceeded, http.StatusBadRequest},
		{"date range", entity.ErrInvalidDateRange, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer()
			s.bookings.CreateErr = tc.err
			w := s.do(http.MethodPost, "/api/v1/bookings", "", bookingRequest())

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.err.Error(), decode(t, w)["message"])
		})
	}
}

func TestListBookings_FilterAliases(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/bookings?home_id=home-1", "admin-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home-1", s.bookings.LastFilter.HomeID)

	w = s.do(http.MethodGet, "/api/v1/bookings?homeId=home-2", "admin-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home-2", s.bookings.LastFilter.HomeID)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestListHomeBookings(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/homes/home-1/bookings", "admin-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}

func TestBookingSummaries(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/bookings/summary", "admin-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"home_name":"Lake House"`)
}

func TestGetBooking_NotFound(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/bookings/none", "admin-token", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReviewLink_OnlyOnce(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/bookings/booking-1/create-review-link", "admin-token", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decode(t, w)["review_link"], "/api/v1/homes/home-1/review-link?token=")

	w = s.do(http.MethodPost, "/api/v1/bookings/booking-1/create-review-link", "admin-token", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSendReviewLink_NotGenerated(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/bookings/booking-1/send-review-link", "admin-token", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "review link has not been generated for this booking", decode(t, w)["message"])
}

func TestSendReviewLink_DeliveryFailure(t *testing.T) {
	s := newTestServer()
	s.bookings.Bookings["booking-1"].ReviewLink = "http://localhost:8080/x"
	s.bookings.ShouldFailNotification = true
	w := s.do(http.MethodPost, "/api/v1/bookings/booking-1/send-review-link", "admin-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "review link could not be sent", decode(t, w)["warning"])
}

func TestReviewLinkRoutes_RequireAdmin(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/bookings/booking-1/create-review-link", "user-token", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
