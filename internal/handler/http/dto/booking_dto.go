package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// CreateBookingRequest carries no binding tags: presence is checked by the booking engine
// so that validation errors are reported in a fixed order.
type CreateBookingRequest struct {
	HomeID      string `json:"home_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      *int   `json:"guests"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps or plain dates. Empty input yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, entity.Wrap(entity.ErrInvalidInput, "invalid date %q", s)
}

func (r CreateBookingRequest) ToInput() (usecasecontract.BookingInput, error) {
	checkIn, err := ParseDate(r.CheckIn)
	if err != nil {
		return usecasecontract.BookingInput{}, fmt.Errorf("check_in: %w", err)
	}
	checkOut, err := ParseDate(r.CheckOut)
	if err != nil {
		return usecasecontract.BookingInput{}, fmt.Errorf("check_out: %w", err)
	}
	return usecasecontract.BookingInput{
		HomeID:      r.HomeID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      r.Guests,
	}, nil
}
