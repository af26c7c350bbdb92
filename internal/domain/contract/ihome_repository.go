package contract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// IHomeRepository persists homes together with their embedded reviews.
type IHomeRepository interface {
	CreateHome(ctx context.Context, home *entity.Home) error
	// GetHomeByID returns entity.ErrListingNotFound when the home does not exist.
	GetHomeByID(ctx context.Context, homeID string) (*entity.Home, error)
	ListHomes(ctx context.Context) ([]*entity.Home, error)
	SearchHomes(ctx context.Context, filter entity.HomeSearchFilter) ([]*entity.Home, error)
	ListHomesByOwner(ctx context.Context, ownerID string) ([]*entity.Home, error)
	// UpdateHomeDetails overwrites the descriptive fields. Owner, reviews and rating are untouched.
	UpdateHomeDetails(ctx context.Context, home *entity.Home) error
	DeleteHome(ctx context.Context, homeID string) error
	// SaveReviews replaces reviews and rating only if the stored version still equals
	// expectedVersion, bumping it by one. It returns entity.ErrVersionConflict otherwise.
	SaveReviews(ctx context.Context, homeID string, reviews []entity.Review, rating float64, expectedVersion int64) error
	// GetOwnerStats aggregates an owner's homes. Owner profile is left nil.
	GetOwnerStats(ctx context.Context, ownerID string) (*entity.OwnerStats, error)
}
