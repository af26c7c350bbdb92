package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// HomeInput is the full set of listing fields supplied on create.
type HomeInput struct {
	Name               string
	Description        string
	Location           string
	Price              float64
	ImageURLs          []string
	Bedrooms           int
	Beds               int
	MaxGuests          int
	IsGuestNumberFixed bool
	Amenities          []string
}

// HomeUpdate carries optional listing fields. Nil means "leave unchanged".
type HomeUpdate struct {
	Name               *string
	Description        *string
	Location           *string
	Price              *float64
	ImageURLs          []string
	Bedrooms           *int
	Beds               *int
	MaxGuests          *int
	IsGuestNumberFixed *bool
	Amenities          []string
}

// ReviewAuthor references whoever wrote a review.
type ReviewAuthor struct {
	ID   string
	Kind entity.ReviewAuthorKind
}

type IHomeUseCase interface {
	CreateHome(ctx context.Context, actor entity.Identity, input HomeInput) (*entity.Home, error)
	GetHome(ctx context.Context, homeID string) (*entity.Home, error)
	ListHomes(ctx context.Context) ([]*entity.Home, error)
	SearchHomes(ctx context.Context, filter entity.HomeSearchFilter) ([]*entity.Home, error)
	UpdateHome(ctx context.Context, actor entity.Identity, homeID string, update HomeUpdate) (*entity.Home, error)
	DeleteHome(ctx context.Context, actor entity.Identity, homeID string) error
	AddReview(ctx context.Context, homeID string, author ReviewAuthor, comment string, rating int) (*entity.Home, error)
	ListReviews(ctx context.Context, homeID string) ([]entity.ReviewView, error)
	GetReview(ctx context.Context, homeID, reviewID string) (*entity.ReviewView, error)
	GetOwnerStats(ctx context.Context, ownerID string) (*entity.OwnerStats, error)
	GetOwnerStatsByHome(ctx context.Context, homeID string) (*entity.OwnerStats, error)
}
