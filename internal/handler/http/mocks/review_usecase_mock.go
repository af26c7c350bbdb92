package mocks

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// MockReviewUsecase accepts ValidToken for home-1 only.
type MockReviewUsecase struct {
	ValidToken string
	LastToken  string
}

var _ usecasecontract.IReviewUseCase = (*MockReviewUsecase)(nil)

func NewMockReviewUsecase() *MockReviewUsecase {
	return &MockReviewUsecase{ValidToken: "review-token"}
}

func (m *MockReviewUsecase) SubmitReviewViaToken(ctx context.Context, homeID, token, comment string, rating int) (*entity.Home, error) {
	m.LastToken = token
	switch {
	case token == "":
		return nil, entity.ErrMissingToken
	case token != m.ValidToken:
		return nil, entity.ErrInvalidToken
	case homeID != "home-1":
		return nil, entity.ErrTokenListingMismatch
	}
	home := &entity.Home{ID: homeID}
	home.AddReview(entity.Review{ID: "r1", Comment: comment, Rating: rating})
	return home, nil
}
