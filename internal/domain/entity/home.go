package entity

import (
	"math"
	"strings"
	"time"
)

// Home is a bookable property listing. Reviews are embedded and owned by the home.
type Home struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Description        string    `bson:"description" json:"description"`
	Location           string    `bson:"location" json:"location"`
	Price              float64   `bson:"price" json:"price"`
	ImageURLs          []string  `bson:"image_urls" json:"image_urls"`
	Bedrooms           int       `bson:"bedrooms" json:"bedrooms"`
	Beds               int       `bson:"beds" json:"beds"`
	MaxGuests          int       `bson:"max_guests" json:"max_guests"`
	IsGuestNumberFixed bool      `bson:"is_guest_number_fixed" json:"is_guest_number_fixed"`
	Amenities          []string  `bson:"amenities" json:"amenities"`
	OwnerID            string    `bson:"owner_id" json:"owner_id"`
	Reviews            []Review  `bson:"reviews" json:"reviews"`
	Rating             float64   `bson:"rating" json:"rating"`
	Version            int64     `bson:"version" json:"-"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// ReviewAuthorKind tells what AuthorID points to.
type ReviewAuthorKind string

const (
	ReviewAuthorUser    ReviewAuthorKind = "user"
	ReviewAuthorBooking ReviewAuthorKind = "booking"
)

// Review is a rating left on a home, either by a signed-in user or through a booking's review link.
type Review struct {
	ID         string           `bson:"id" json:"id"`
	AuthorID   string           `bson:"author_id" json:"author_id"`
	AuthorKind ReviewAuthorKind `bson:"author_kind" json:"author_kind"`
	Comment    string           `bson:"comment" json:"comment"`
	Rating     int              `bson:"rating" json:"rating"`
	CreatedAt  time.Time        `bson:"created_at" json:"created_at"`
}

// ReviewView is a review with its author reference resolved to a display name.
type ReviewView struct {
	Review
	AuthorName string `json:"author_name"`
}

const (
	MinRating = 1
	MaxRating = 5
)

func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// AverageRating is the mean of the ratings rounded to one decimal, 0 for no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RoundTo(float64(sum)/float64(len(reviews)), 1)
}

// AddReview appends the review and recomputes the aggregate rating.
func (h *Home) AddReview(review Review) {
	h.Reviews = append(h.Reviews, review)
	h.Rating = AverageRating(h.Reviews)
}

// FindReview returns the embedded review with the given id.
func (h *Home) FindReview(reviewID string) (*Review, bool) {
	for i := range h.Reviews {
		if h.Reviews[i].ID == reviewID {
			return &h.Reviews[i], true
		}
	}
	return nil, false
}

// NormalizeAmenities trims, drops blanks and de-duplicates amenities keeping first-seen order.
func NormalizeAmenities(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}

// RoundTo rounds v half away from zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// HomeSearchFilter holds the optional, conjunctive search criteria.
type HomeSearchFilter struct {
	Location  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

// Matches evaluates the filter against a home in memory.
func (f HomeSearchFilter) Matches(h *Home) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(h.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinPrice != nil && h.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && h.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && h.Rating < *f.MinRating {
		return false
	}
	return true
}

// OwnerStats aggregates an owner's listings.
type OwnerStats struct {
	OwnerID       string        `json:"owner_id"`
	TotalHomes    int           `json:"total_homes"`
	TotalReviews  int           `json:"total_reviews"`
	AverageRating float64       `json:"average_rating"`
	Owner         *OwnerProfile `json:"owner,omitempty"`
}

// OwnerProfile is the public slice of the owner's account shown with stats.
type OwnerProfile struct {
	Username           string `json:"username"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
}
