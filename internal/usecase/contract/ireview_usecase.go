package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// IReviewUseCase accepts reviews authorized by a booking's review token.
type IReviewUseCase interface {
	SubmitReviewViaToken(ctx context.Context, homeID, token, comment string, rating int) (*entity.Home, error)
}
