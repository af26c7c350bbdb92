package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// ReviewUseCaseImpl accepts reviews authorized by a booking's review token.
type ReviewUseCaseImpl struct {
	tokenService TokenService
	bookingRepo  contract.IBookingRepository
	homes        usecasecontract.IHomeUseCase
	logger       usecasecontract.IAppLogger
}

func NewReviewUseCase(tokenService TokenService, bookingRepo contract.IBookingRepository, homes usecasecontract.IHomeUseCase, logger usecasecontract.IAppLogger) *ReviewUseCaseImpl {
	return &ReviewUseCaseImpl{
		tokenService: tokenService,
		bookingRepo:  bookingRepo,
		homes:        homes,
		logger:       logger,
	}
}

var _ usecasecontract.IReviewUseCase = (*ReviewUseCaseImpl)(nil)

// SubmitReviewViaToken stores one review per review token. The booking is marked reviewed
// before the review is appended and unmarked again if the append fails.
func (uc *ReviewUseCaseImpl) SubmitReviewViaToken(ctx context.Context, homeID, token, comment string, rating int) (*entity.Home, error) {
	if strings.TrimSpace(token) == "" {
		return nil, entity.ErrMissingToken
	}

	claims, err := uc.tokenService.ParseReviewToken(token)
	if err != nil {
		if errors.Is(err, entity.ErrTokenExpired) {
			return nil, entity.ErrTokenExpired
		}
		return nil, entity.ErrInvalidToken
	}
	if claims.HomeID != homeID {
		uc.logger.Warnf("review token for home %s presented on home %s", claims.HomeID, homeID)
		return nil, entity.ErrTokenListingMismatch
	}

	booking, err := uc.bookingRepo.GetBookingByID(ctx, claims.BookingID)
	if err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			return nil, entity.ErrBookingNotFound
		}
		uc.logger.Errorf("failed to get booking %s for review: %v", claims.BookingID, err)
		return nil, errors.New(errInternalServer)
	}
	if !strings.EqualFold(booking.ClientEmail, claims.ClientEmail) {
		return nil, entity.ErrClientMismatch
	}
	if booking.ReviewedAt != nil {
		return nil, entity.ErrReviewAlreadySubmitted
	}

	if !entity.IsValidRating(rating) {
		return nil, entity.ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		return nil, entity.ErrMissingFields
	}

	if err := uc.bookingRepo.MarkReviewed(ctx, booking.ID, time.Now()); err != nil {
		if errors.Is(err, entity.ErrReviewAlreadySubmitted) {
			return nil, entity.ErrReviewAlreadySubmitted
		}
		uc.logger.Errorf("failed to mark booking %s reviewed: %v", booking.ID, err)
		return nil, errors.New(errInternalServer)
	}

	author := usecasecontract.ReviewAuthor{ID: booking.ID, Kind: entity.ReviewAuthorBooking}
	home, err := uc.homes.AddReview(ctx, homeID, author, comment, rating)
	if err != nil {
		if clearErr := uc.bookingRepo.ClearReviewed(ctx, booking.ID); clearErr != nil {
			uc.logger.Errorf("failed to unmark booking %s after review error: %v", booking.ID, clearErr)
		}
		return nil, err
	}

	uc.logger.Infof("review via link stored for home %s from booking %s", homeID, booking.ID)
	return home, nil
}
