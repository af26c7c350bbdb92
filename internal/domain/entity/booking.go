package entity

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Booking is a reservation of one home for a date range.
type Booking struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	HomeID           string        `bson:"home_id" json:"home_id"`
	ClientName       string        `bson:"client_name" json:"client_name"`
	ClientEmail      string        `bson:"client_email" json:"client_email"`
	ClientPhone      string        `bson:"client_phone" json:"client_phone"`
	CheckIn          time.Time     `bson:"check_in" json:"check_in"`
	CheckOut         time.Time     `bson:"check_out" json:"check_out"`
	Guests           int           `bson:"guests" json:"guests"`
	TotalPrice       float64       `bson:"total_price" json:"total_price"`
	Status           BookingStatus `bson:"status" json:"status"`
	PaymentStatus    PaymentStatus `bson:"payment_status" json:"payment_status"`
	ReviewLink       string        `bson:"review_link,omitempty" json:"review_link,omitempty"`
	ReviewLinkSentAt *time.Time    `bson:"review_link_sent_at,omitempty" json:"review_link_sent_at,omitempty"`
	ReviewedAt       *time.Time    `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
}

func (b *Booking) HasReviewLink() bool {
	return b.ReviewLink != ""
}

// BookingSummary is the flattened booking/home projection.
type BookingSummary struct {
	BookingID   string    `json:"booking_id"`
	BookedAt    time.Time `json:"booked_at"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ClientPhone string    `json:"client_phone"`
	HomeID      string    `json:"home_id"`
	HomeName    string    `json:"home_name"`
	TotalPrice  float64   `json:"total_price"`
}

// BookingFilter narrows booking listings. Empty fields match everything.
type BookingFilter struct {
	HomeID string
}

// Nights counts calendar nights between check-in and check-out, both taken in UTC.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.UTC().Year(), checkIn.UTC().Month(), checkIn.UTC().Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.UTC().Year(), checkOut.UTC().Month(), checkOut.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(out.Sub(in).Hours() / 24))
}

// TotalPrice is nights × nightly price × surcharge, rounded to cents and never negative.
func TotalPrice(nights int, nightlyPrice, surchargeFactor float64) float64 {
	if nights <= 0 || nightlyPrice <= 0 || surchargeFactor <= 0 {
		return 0
	}
	return RoundTo(float64(nights)*nightlyPrice*surchargeFactor, 2)
}
