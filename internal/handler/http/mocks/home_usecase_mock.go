package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// MockHomeUsecase keeps homes in a map and applies the ownership rule.
type MockHomeUsecase struct {
	ShouldFailList bool

	Homes      map[string]*entity.Home
	LastFilter entity.HomeSearchFilter
	LastAuthor usecasecontract.ReviewAuthor
}

var _ usecasecontract.IHomeUseCase = (*MockHomeUsecase)(nil)

func NewMockHomeUsecase() *MockHomeUsecase {
	return &MockHomeUsecase{
		Homes: map[string]*entity.Home{
			"home-1": {
				ID:        "home-1",
				Name:      "Lake House",
				Location:  "Bishoftu",
				Price:     100,
				MaxGuests: 4,
				OwnerID:   "user-1",
				Reviews:   []entity.Review{},
				CreatedAt: time.Now(),
			},
		},
	}
}

func (m *MockHomeUsecase) CreateHome(ctx context.Context, actor entity.Identity, input usecasecontract.HomeInput) (*entity.Home, error) {
	home := &entity.Home{ID: "home-new", Name: input.Name, Location: input.Location, Price: input.Price, OwnerID: actor.UserID}
	m.Homes[home.ID] = home
	return home, nil
}

func (m *MockHomeUsecase) GetHome(ctx context.Context, homeID string) (*entity.Home, error) {
	home, ok := m.Homes[homeID]
	if !ok {
		return nil, entity.ErrListingNotFound
	}
	return home, nil
}

func (m *MockHomeUsecase) ListHomes(ctx context.Context) ([]*entity.Home, error) {
	if m.ShouldFailList {
		return nil, context.DeadlineExceeded
	}
	out := make([]*entity.Home, 0, len(m.Homes))
	for _, h := range m.Homes {
		out = append(out, h)
	}
	return out, nil
}

func (m *MockHomeUsecase) SearchHomes(ctx context.Context, filter entity.HomeSearchFilter) ([]*entity.Home, error) {
	m.LastFilter = filter
	var out []*entity.Home
	for _, h := range m.Homes {
		if filter.Matches(h) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *MockHomeUsecase) UpdateHome(ctx context.Context, actor entity.Identity, homeID string, update usecasecontract.HomeUpdate) (*entity.Home, error) {
	home, err := m.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(home.OwnerID) {
		return nil, entity.ErrForbidden
	}
	if update.Name != nil {
		home.Name = *update.Name
	}
	return home, nil
}

func (m *MockHomeUsecase) DeleteHome(ctx context.Context, actor entity.Identity, homeID string) error {
	home, err := m.GetHome(ctx, homeID)
	if err != nil {
		return err
	}
	if !actor.CanManage(home.OwnerID) {
		return entity.ErrForbidden
	}
	delete(m.Homes, homeID)
	return nil
}

func (m *MockHomeUsecase) AddReview(ctx context.Context, homeID string, author usecasecontract.ReviewAuthor, comment string, rating int) (*entity.Home, error) {
	m.LastAuthor = author
	if !entity.IsValidRating(rating) {
		return nil, entity.ErrInvalidRating
	}
	home, err := m.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	home.AddReview(entity.Review{ID: "review-1", AuthorID: author.ID, AuthorKind: author.Kind, Comment: comment, Rating: rating})
	return home, nil
}

func (m *MockHomeUsecase) ListReviews(ctx context.Context, homeID string) ([]entity.ReviewView, error) {
	home, err := m.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	views := make([]entity.ReviewView, 0, len(home.Reviews))
	for _, r := range home.Reviews {
		views = append(views, entity.ReviewView{Review: r, AuthorName: "author-" + r.AuthorID})
	}
	return views, nil
}

func (m *MockHomeUsecase) GetReview(ctx context.Context, homeID, reviewID string) (*entity.ReviewView, error) {
	home, err := m.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	r, ok := home.FindReview(reviewID)
	if !ok {
		return nil, entity.ErrReviewNotFound
	}
	return &entity.ReviewView{Review: *r}, nil
}

func (m *MockHomeUsecase) GetOwnerStats(ctx context.Context, ownerID string) (*entity.OwnerStats, error) {
	stats := &entity.OwnerStats{OwnerID: ownerID}
	for _, h := range m.Homes {
		if h.OwnerID == ownerID {
			stats.TotalHomes++
			stats.TotalReviews += len(h.Reviews)
		}
	}
	if stats.TotalHomes == 0 {
		return nil, entity.ErrListingNotFound
	}
	return stats, nil
}

func (m *MockHomeUsecase) GetOwnerStatsByHome(ctx context.Context, homeID string) (*entity.OwnerStats, error) {
	home, err := m.GetHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	return m.GetOwnerStats(ctx, home.OwnerID)
}
