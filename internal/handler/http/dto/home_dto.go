package dto

import (
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

type CreateHomeRequest struct {
	Name               string   `json:"name" binding:"required,notblank"`
	Description        string   `json:"description" binding:"required,notblank"`
	Location           string   `json:"location" binding:"required,notblank"`
	Price              float64  `json:"price" binding:"required,gt=0"`
	ImageURLs          []string `json:"image_urls" binding:"required,min=1,dive,notblank"`
	Bedrooms           int      `json:"bedrooms" binding:"omitempty,min=1"`
	Beds               int      `json:"beds" binding:"omitempty,min=1"`
	MaxGuests          int      `json:"max_guests" binding:"omitempty,min=1"`
	IsGuestNumberFixed bool     `json:"is_guest_number_fixed"`
	Amenities          []string `json:"amenities"`
}

func (r CreateHomeRequest) ToInput() usecasecontract.HomeInput {
	return usecasecontract.HomeInput{
		Name:               r.Name,
		Description:        r.Description,
		Location:           r.Location,
		Price:              r.Price,
		ImageURLs:          r.ImageURLs,
		Bedrooms:           r.Bedrooms,
		Beds:               r.Beds,
		MaxGuests:          r.MaxGuests,
		IsGuestNumberFixed: r.IsGuestNumberFixed,
		Amenities:          r.Amenities,
	}
}

// UpdateHomeRequest has no owner field: ownership never changes through an update.
type UpdateHomeRequest struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Location           *string  `json:"location"`
	Price              *float64 `json:"price"`
	ImageURLs          []string `json:"image_urls"`
	Bedrooms           *int     `json:"bedrooms"`
	Beds               *int     `json:"beds"`
	MaxGuests          *int     `json:"max_guests"`
	IsGuestNumberFixed *bool    `json:"is_guest_number_fixed"`
	Amenities          []string `json:"amenities"`
}

func (r UpdateHomeRequest) ToUpdate() usecasecontract.HomeUpdate {
	return usecasecontract.HomeUpdate{
		Name:               r.Name,
		Description:        r.Description,
		Location:           r.Location,
		Price:              r.Price,
		ImageURLs:          r.ImageURLs,
		Bedrooms:           r.Bedrooms,
		Beds:               r.Beds,
		MaxGuests:          r.MaxGuests,
		IsGuestNumberFixed: r.IsGuestNumberFixed,
		Amenities:          r.Amenities,
	}
}

// ReviewRequest is the body of both review endpoints. Token is only read by the review-link route.
type ReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
	Token   string `json:"token"`
}

// HomeWithReviews is a home whose reviews carry resolved author names.
type HomeWithReviews struct {
	*entity.Home
	Reviews []entity.ReviewView `json:"reviews"`
}
