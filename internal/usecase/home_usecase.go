package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// maxReviewAttempts bounds the optimistic retry loop in AddReview.
const maxReviewAttempts = 5

const (
	unknownUserName  = "Deleted user"
	unknownGuestName = "Guest"
)

// HomeUseCaseImpl is the listing registry.
type HomeUseCaseImpl struct {
	homeRepo    contract.IHomeRepository
	userRepo    contract.IUserRepository
	bookingRepo contract.IBookingRepository
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	homeCache   contract.IHomeCache
}

func NewHomeUseCase(
	homeRepo contract.IHomeRepository,
	userRepo contract.IUserRepository,
	bookingRepo contract.IBookingRepository,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *HomeUseCaseImpl {
	return &HomeUseCaseImpl{
		homeRepo:    homeRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		uuidgen:     uuidgen,
		logger:      logger,
	}
}

var _ usecasecontract.IHomeUseCase = (*HomeUseCaseImpl)(nil)

// SetHomeCache enables the read-through cache. Without it every read goes to the repository.
func (uc *HomeUseCaseImpl) SetHomeCache(cache contract.IHomeCache) {
	uc.homeCache = cache
}

func (uc *HomeUseCaseImpl) CreateHome(ctx context.Context, actor entity.Identity, input usecasecontract.HomeInput) (*entity.Home, error) {
	if actor.UserID == "" {
		return nil, entity.ErrMissingToken
	}
	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)
	description := strings.TrimSpace(input.Description)
	images := trimNonEmpty(input.ImageURLs)
	if name == "" || location == "" || description == "" || len(images) == 0 {
		return nil, entity.ErrMissingFields
	}
	if input.Price <= 0 {
		return nil, entity.Wrap(entity.ErrInvalidInput, "price must be greater than zero")
	}
	if input.Bedrooms < 0 || input.Beds < 0 || input.MaxGuests < 0 {
		return nil, entity.Wrap(entity.ErrInvalidInput, "room and guest counts cannot be negative")
	}

	now := time.Now()
	home := &entity.Home{
		ID:                 uc.uuidgen.NewUUID(),
		Name:               name,
		Description:        description,
		Location:           location,
		Price:              input.Price,
		ImageURLs:          images,
		Bedrooms:           defaultCount(input.Bedrooms),
		Beds:               defaultCount(input.Beds),
		MaxGuests:          defaultCount(input.MaxGuests),
		IsGuestNumberFixed: input.IsGuestNumberFixed,
		Amenities:          entity.NormalizeAmenities(input.Amenities),
		OwnerID:            actor.UserID,
		Reviews:            []entity.Review{},
		Rating:             0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.homeRepo.CreateHome(ctx, home); err != nil {
		uc.logger.Errorf("failed to create home: %v", err)
		return nil, fmt.Errorf("failed to create home: %w", err)
	}
	uc.invalidateLists(ctx)
	return home, nil
}

func defaultCount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// GetHome returns one listing, from cache when possible.
func (uc *HomeUseCaseImpl) GetHome(ctx context.Context, homeID string) (*entity.Home, error) {
	if homeID == "" {
		return nil, entity.ErrMissingFields
	}
	if uc.homeCache != nil {
		cached, found, err := uc.homeCache.GetHome(ctx, homeID)
		switch {
		case err != nil:
			uc.logger.Warningf("cache error: home %s err=%v", homeID, err)
		case found:
			metrics.IncCacheHit("detail")
			return cached, nil
		default:
			metrics.IncCacheMiss("detail")
		}
	}

	home, err := uc.homeRepo.GetHomeByID(ctx, homeID)
	if err != nil {
		if errors.Is(err, entity.ErrListingNotFound) {
			return nil, entity.ErrListingNotFound
		}
		uc.logger.Errorf("failed to get home %s: %v", homeID, err)
		return nil, errors.New(errInternalServer)
	}

	if uc.homeCache != nil {
		if err := uc.homeCache.SetHome(ctx, home); err != nil {
			uc.logger.Warningf("failed to cache home %s: %v", homeID, err)
		}
	}
	return home, nil
}

func (uc *HomeUseCaseImpl) ListHomes(ctx context.Context) ([]*entity.Home, error) {
	if uc.homeCache != nil {
		cached, found, err := uc.homeCache.GetHomeList(ctx)
		switch {
		case err != nil:
			uc.logger.Warningf("cache error: home list err=%v", err)
		case found:
			metrics.IncCacheHit("list")
			return cached, nil
		default:
			metrics.IncCacheMiss("list")
		}
	}

	homes, err := uc.homeRepo.ListHomes(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list homes: %v", err)
		return nil, errors.New(errInternalServer)
	}

	if uc.homeCache != nil {
		if err := uc.homeCache.SetHomeList(ctx, homes); err != nil {
			uc.logger.Warningf("failed to cache home list: %v", err)
		}
	}
	return homes, nil
}

// SearchHomes applies the optional filters conjunctively.
func (uc *HomeUseCaseImpl) SearchHomes(ctx context.Context, filter entity.HomeSearchFilter) ([]*entity.Home, error) {
	filter.Location = strings.TrimSpace(filter.Location)
	if (filter.MinPrice != nil && *filter.MinPrice < 0) || (filter.MaxPrice != nil && *filter.MaxPrice < 0) {
		return nil, entity.Wrap(entity.ErrInvalidInput, "price bounds cannot be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, entity.Wrap(entity.ErrInvalidInput, "minPrice cannot exceed maxPrice")
	}
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > entity.MaxRating) {
		return nil, entity.Wrap(entity.ErrInvalidInput, "minRating must be between 0 and %d", entity.MaxRating)
	}

	homes, err := uc.homeRepo.SearchHomes(ctx, filter)
	if err != nil {
		uc.logger.Errorf("failed to search homes: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return homes, nil
}

// loadForMutation reads the authoritative copy and checks the actor may change it.
func (uc *HomeUseCaseImpl) loadForMutation(ctx context.Context, actor entity.Identity, homeID string) (*entity.Home, error) {
	home, err := uc.homeRepo.GetHomeByID(ctx, homeID)
	if err != nil {
		if errors.Is(err, entity.ErrListingNotFound) {
			return nil, entity.ErrListingNotFound
		}
		uc.logger.Errorf("failed to get home %s: %v", homeID, err)
		return nil, errors.New(errInternalServer)
	}
	if !actor.CanManage(home.OwnerID) {
		uc.logger.Warnf("user %s denied change of home %s", actor.UserID, homeID)
		return nil, entity.ErrForbidden
	}
	return home, nil
}

// UpdateHome changes descriptive fields. The owner never changes.
func (uc *HomeUseCaseImpl) UpdateHome(ctx context.Context, actor entity.Identity, homeID string, update usecasecontract.HomeUpdate) (*entity.Home, error) {
	home, err := uc.loadForMutation(ctx, actor, homeID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, entity.Wrap(entity.ErrInvalidInput, "name cannot be empty")
		}
		home.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		if strings.TrimSpace(*update.Description) == "" {
			return nil, entity.Wrap(entity.ErrInvalidInput, "description cannot be empty")
		}
		home.Description = strings.TrimSpace(*update.Description)
	}
	if update.Location != nil {
		if strings.TrimSpace(*update.Location) == "" {
			return nil, entity.Wrap(entity.ErrInvalidInput, "location cannot be empty")
		}
		home.Location = strings.TrimSpace(*update.Location)
	}
	if update.Price != nil {
		if *update.Price <= 0 {
			return nil, entity.Wrap(entity.ErrInvalidInput, "price must be greater than zero")
		}
		home.Price = *update.Price
	}
	if update.ImageURLs != nil {
		images := trimNonEmpty(update.ImageURLs)
		if len(images) == 0 {
			return nil, entity.Wrap(entity.ErrInvalidInput, "at least one image is required")
		}
		home.ImageURLs = images
	}
	if update.Bedrooms != nil {
		if *update.Bedrooms < 1 {
			return nil, entity.Wrap(entity.ErrInvalidInput, "bedrooms must be at least 1")
		}
		home.Bedrooms = *update.Bedrooms
	}
	if update.Beds != nil {
		if *update.Beds < 1 {
			return nil, entity.Wrap(entity.ErrInvalidInput, "beds must be at least 1")
		}
		home.Beds = *update.Beds
	}
	if update.MaxGuests != nil {
		if *update.MaxGuests < 1 {
			return nil, entity.Wrap(entity.ErrInvalidInput, "maxGuests must be at least 1")
		}
		home.MaxGuests = *update.MaxGuests
	}
	if update.IsGuestNumberFixed != nil {
		home.IsGuestNumberFixed = *update.IsGuestNumberFixed
	}
	if update.Amenities != nil {
		home.Amenities = entity.NormalizeAmenities(update.Amenities)
	}
	home.UpdatedAt = time.Now()

	if err := uc.homeRepo.UpdateHomeDetails(ctx, home); err != nil {
		if errors.Is(err, entity.ErrListingNotFound) {
			return nil, entity.ErrListingNotFound
		}
		uc.logger.Errorf("failed to update home %s: %v", homeID, err)
		return nil, fmt.Errorf("failed to update home: %w", err)
	}
	uc.invalidate(ctx, homeID)
	return home, nil
}

func (uc *HomeUseCaseImpl) DeleteHome(ctx context.Context, actor entity.Identity, homeID string) error {
	if _, err := uc.loadForMutation(ctx, actor, homeID); err != nil {
		return err
	}
	if err := uc.homeRepo.DeleteHome(ctx, homeID); err != nil {
		if errors.Is(err, entity.ErrListingNotFound) {
			return entity.ErrListingNotFound
		}
		uc.logger.Errorf("failed to delete home %s: %v", homeID, err)
		return fmt.Errorf("failed to delete home: %w", err)
	}
	uc.invalidate(ctx, homeID)
	uc.logger.Infof("home %s deleted by %s", homeID, actor.UserID)
	return nil
}

// AddReview appends a review and recomputes the rating. Concurrent writers are detected
// through the home's version and the append is retried on a fresh copy.
func (uc *HomeUseCaseImpl) AddReview(ctx context.Context, homeID string, author usecasecontract.ReviewAuthor, comment string, rating int) (*entity.Home, error) {
	if !entity.IsValidRating(rating) {
		return nil, entity.ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if comment == "" || author.ID == "" || homeID == "" {
		return nil, entity.ErrMissingFields
	}
	if author.Kind == "" {
		author.Kind = entity.ReviewAuthorUser
	}

	for attempt := 1; attempt <= maxReviewAttempts; attempt++ {
		home, err := uc.homeRepo.GetHomeByID(ctx, homeID)
		if err != nil {
			if errors.Is(err, entity.ErrListingNotFound) {
				return nil, entity.ErrListingNotFound
			}
			uc.logger.Errorf("failed to get home %s for review: %v", homeID, err)
			return nil, errors.New(errInternalServer)
		}

		reviews := make([]entity.Review, len(home.Reviews), len(home.Reviews)+1)
		copy(reviews, home.Reviews)
		reviews = append(reviews, entity.Review{
			ID:         uc.uuidgen.NewUUID(),
			AuthorID:   author.ID,
			AuthorKind: author.Kind,
			Comment:    comment,
			Rating:     rating,
			CreatedAt:  time.Now(),
		})
		newRating := entity.AverageRating(reviews)

		err = uc.homeRepo.SaveReviews(ctx, homeID, reviews, newRating, home.Version)
		if errors.Is(err, entity.ErrVersionConflict) {
			metrics.IncReviewRetry()
			uc.logger.Debugf("version conflict on home %s, attempt %d", homeID, attempt)
			continue
		}
		if err != nil {
			if errors.Is(err, entity.ErrListingNotFound) {
				return nil, entity.ErrListingNotFound
			}
			uc.logger.Errorf("failed to save reviews of home %s: %v", homeID, err)
			return nil, errors.New(errInternalServer)
		}

		home.Reviews = reviews
		home.Rating = newRating
		home.Version++
		uc.invalidate(ctx, homeID)
		metrics.IncReviewAdded(string(author.Kind))
		return home, nil
	}

	uc.logger.Warnf("giving up review on home %s after %d conflicts", homeID, maxReviewAttempts)
	return nil, entity.ErrConcurrentUpdateExceeded
}

func (uc *HomeUseCaseImpl) ListReviews(ctx context.Context, homeID string) ([]entity.ReviewView, error) {
	home, err := uc.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string)
	views := make([]entity.ReviewView, 0, len(home.Reviews))
	for _, r := range home.Reviews {
		views = append(views, entity.ReviewView{Review: r, AuthorName: uc.authorName(ctx, r, names)})
	}
	return views, nil
}

func (uc *HomeUseCaseImpl) GetReview(ctx context.Context, homeID, reviewID string) (*entity.ReviewView, error) {
	home, err := uc.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	review, ok := home.FindReview(reviewID)
	if !ok {
		return nil, entity.ErrReviewNotFound
	}
	return &entity.ReviewView{Review: *review, AuthorName: uc.authorName(ctx, *review, nil)}, nil
}

// authorName resolves a review's author reference, memoizing in names when given.
func (uc *HomeUseCaseImpl) authorName(ctx context.Context, r entity.Review, names map[string]string) string {
	key := string(r.AuthorKind) + ":" + r.AuthorID
	if name, ok := names[key]; ok {
		return name
	}

	var name string
	switch r.AuthorKind {
	case entity.ReviewAuthorBooking:
		name = unknownGuestName
		if b, err := uc.bookingRepo.GetBookingByID(ctx, r.AuthorID); err == nil {
			name = b.ClientName
		}
	default:
		name = unknownUserName
		if u, err := uc.userRepo.GetUserByID(ctx, r.AuthorID); err == nil {
			name = u.Username
		}
	}

	if names != nil {
		names[key] = name
	}
	return name
}

// GetOwnerStats aggregates every listing of one owner.
func (uc *HomeUseCaseImpl) GetOwnerStats(ctx context.Context, ownerID string) (*entity.OwnerStats, error) {
	if ownerID == "" {
		return nil, entity.ErrMissingFields
	}
	stats, err := uc.homeRepo.GetOwnerStats(ctx, ownerID)
	if err != nil {
		uc.logger.Errorf("failed to aggregate stats of owner %s: %v", ownerID, err)
		return nil, errors.New(errInternalServer)
	}
	if stats == nil || stats.TotalHomes == 0 {
		return nil, entity.Wrap(entity.ErrListingNotFound, "no homes found for owner %s", ownerID)
	}

	owner, err := uc.userRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUserNotFound
		}
		uc.logger.Errorf("failed to get owner %s: %v", ownerID, err)
		return nil, errors.New(errInternalServer)
	}

	stats.OwnerID = ownerID
	stats.AverageRating = entity.RoundTo(stats.AverageRating, 1)
	stats.Owner = &entity.OwnerProfile{
		Username:           owner.Username,
		CompanyName:        owner.CompanyName,
		CompanyDescription: owner.CompanyDescription,
	}
	return stats, nil
}

func (uc *HomeUseCaseImpl) GetOwnerStatsByHome(ctx context.Context, homeID string) (*entity.OwnerStats, error) {
	home, err := uc.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	return uc.GetOwnerStats(ctx, home.OwnerID)
}

func (uc *HomeUseCaseImpl) invalidate(ctx context.Context, homeID string) {
	if uc.homeCache == nil {
		return
	}
	if err := uc.homeCache.InvalidateHome(ctx, homeID); err != nil {
		uc.logger.Warningf("failed to invalidate cached home %s: %v", homeID, err)
	}
	uc.invalidateLists(ctx)
}

func (uc *HomeUseCaseImpl) invalidateLists(ctx context.Context) {
	if uc.homeCache == nil {
		return
	}
	if err := uc.homeCache.InvalidateHomeLists(ctx); err != nil {
		uc.logger.Warningf("failed to invalidate cached home lists: %v", err)
	}
}
