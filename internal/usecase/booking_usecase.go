package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

const (
	notificationWarning = "booking saved but the notification email could not be sent"
	reviewLinkWarning   = "review link could not be sent"
)

// BookingUseCaseImpl is the booking engine.
type BookingUseCaseImpl struct {
	bookingRepo  contract.IBookingRepository
	homeRepo     contract.IHomeRepository
	tokenService TokenService
	emailService contract.IEmailService
	uuidgen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	config       usecasecontract.IConfigProvider
	logger       usecasecontract.IAppLogger
}

func NewBookingUseCase(
	bookingRepo contract.IBookingRepository,
	homeRepo contract.IHomeRepository,
	tokenService TokenService,
	emailService contract.IEmailService,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *BookingUseCaseImpl {
	return &BookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		homeRepo:     homeRepo,
		tokenService: tokenService,
		emailService: emailService,
		uuidgen:      uuidgen,
		validator:    validator,
		config:       cfg,
		logger:       logger,
	}
}

var _ usecasecontract.IBookingUseCase = (*BookingUseCaseImpl)(nil)

// CreateBooking validates, prices and stores a booking, then issues its review link and
// emails the client. A failed email only produces a warning on the result.
func (uc *BookingUseCaseImpl) CreateBooking(ctx context.Context, input usecasecontract.BookingInput) (*usecasecontract.BookingResult, error) {
	input.HomeID = strings.TrimSpace(input.HomeID)
	input.ClientName = strings.TrimSpace(input.ClientName)
	input.ClientEmail = strings.ToLower(strings.TrimSpace(input.ClientEmail))
	input.ClientPhone = strings.TrimSpace(input.ClientPhone)
	if input.HomeID == "" || input.ClientName == "" || input.ClientEmail == "" || input.ClientPhone == "" ||
		input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return nil, entity.ErrMissingFields
	}
	if err := uc.validator.ValidateEmail(input.ClientEmail); err != nil {
		return nil, entity.Wrap(entity.ErrInvalidInput, "invalid client email")
	}
	guests := 1
	if input.Guests != nil {
		if *input.Guests < 1 {
			return nil, entity.Wrap(entity.ErrInvalidInput, "guests must be at least 1")
		}
		guests = *input.Guests
	}

	home, err := uc.homeRepo.GetHomeByID(ctx, input.HomeID)
	if err != nil {
		if errors.Is(err, entity.ErrListingNotFound) {
			return nil, entity.ErrListingNotFound
		}
		uc.logger.Errorf("failed to get home %s for booking: %v", input.HomeID, err)
		return nil, errors.New(errInternalServer)
	}

	if uc.config.GetEnforceGuestCapacity() && guests > home.MaxGuests {
		return nil, entity.Wrap(entity.ErrCapacityExceeded, "home allows at most %d guests", home.MaxGuests)
	}

	nights := entity.Nights(input.CheckIn, input.CheckOut)
	if !input.CheckOut.After(input.CheckIn) || nights < 1 {
		return nil, entity.ErrInvalidDateRange
	}

	booking := &entity.Booking{
		ID:            uc.uuidgen.NewUUID(),
		HomeID:        home.ID,
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientPhone:   input.ClientPhone,
		CheckIn:       input.CheckIn.UTC(),
		CheckOut:      input.CheckOut.UTC(),
		Guests:        guests,
		TotalPrice:    entity.TotalPrice(nights, home.Price, uc.config.GetBookingSurchargeFactor()),
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusUnpaid,
		CreatedAt:     time.Now(),
	}

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		uc.logger.Errorf("failed to create booking: %v", err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	metrics.IncBookingCreated()
	uc.logger.Infof("booking %s created for home %s (%d nights, total %.2f)", booking.ID, home.ID, nights, booking.TotalPrice)

	result := &usecasecontract.BookingResult{Booking: booking}

	if uc.config.GetIssueReviewLinkOnBooking() {
		link, err := uc.issueReviewLink(ctx, booking)
		if err != nil {
			uc.logger.Warnf("failed to issue review link for booking %s: %v", booking.ID, err)
		} else {
			booking.ReviewLink = link
		}
	}

	subject, body := confirmationEmail(home, booking, nights)
	if err := uc.notify(ctx, "booking_confirmation", booking.ClientEmail, subject, body); err != nil {
		result.Warning = notificationWarning
	}
	return result, nil
}

// issueReviewLink signs a review token for the booking and stores the link only if none exists.
func (uc *BookingUseCaseImpl) issueReviewLink(ctx context.Context, booking *entity.Booking) (string, error) {
	token, err := uc.tokenService.GenerateReviewToken(booking.ID, booking.HomeID, booking.ClientEmail)
	if err != nil {
		return "", fmt.Errorf("failed to generate review token: %w", err)
	}
	link := buildReviewLink(uc.config.GetAppBaseURL(), booking.HomeID, token)
	if err := uc.bookingRepo.SetReviewLinkIfAbsent(ctx, booking.ID, link); err != nil {
		return "", err
	}
	return link, nil
}

func buildReviewLink(baseURL, homeID, token string) string {
	return fmt.Sprintf("%s/api/v1/homes/%s/review-link?token=%s",
		strings.TrimRight(baseURL, "/"), url.PathEscape(homeID), url.QueryEscape(token))
}

// notify sends one email bounded by the notification timeout and records the outcome.
func (uc *BookingUseCaseImpl) notify(ctx context.Context, kind, to, subject, body string) error {
	sendCtx, cancel := context.WithTimeout(ctx, uc.config.GetNotificationTimeout())
	defer cancel()

	if err := uc.emailService.SendEmail(sendCtx, to, subject, body); err != nil {
		metrics.ObserveNotification(kind, "failed")
		uc.logger.Warnf("failed to send %s email to %s: %v", kind, to, err)
		return err
	}
	metrics.ObserveNotification(kind, "sent")
	uc.logger.Infof("%s email sent to %s", kind, to)
	return nil
}

func confirmationEmail(home *entity.Home, b *entity.Booking, nights int) (string, string) {
	subject := fmt.Sprintf("Booking Confirmation - %s", home.Name)
	var sb strings.Builder
	fmt.Fprintf(&sb, "<p>Dear %s,</p>", b.ClientName)
	fmt.Fprintf(&sb, "<p>Your booking at <strong>%s</strong> (%s) is confirmed.</p>", home.Name, home.Location)
	fmt.Fprintf(&sb, "<p>Check-in: %s<br>Check-out: %s<br>Nights: %d<br>Guests: %d<br>Total price: $%.2f</p>",
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"), nights, b.Guests, b.TotalPrice)
	if b.ReviewLink != "" {
		fmt.Fprintf(&sb, `<p>After your stay you can review the home here: <a href="%s">leave a review</a></p>`, b.ReviewLink)
	}
	sb.WriteString("<p>Thank you for booking with us.</p>")
	return subject, sb.String()
}

func reviewRequestEmail(b *entity.Booking) (string, string) {
	subject := "How was your stay?"
	body := fmt.Sprintf(`<p>Dear %s,</p><p>We hope you enjoyed your stay. Please take a moment to <a href="%s">review the home</a>.</p>`,
		b.ClientName, b.ReviewLink)
	return subject, body
}

func (uc *BookingUseCaseImpl) GetBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	if bookingID == "" {
		return nil, entity.ErrMissingFields
	}
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			return nil, entity.ErrBookingNotFound
		}
		uc.logger.Errorf("failed to get booking %s: %v", bookingID, err)
		return nil, errors.New(errInternalServer)
	}
	return booking, nil
}

func (uc *BookingUseCaseImpl) ListBookings(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	bookings, err := uc.bookingRepo.ListBookings(ctx, filter)
	if err != nil {
		uc.logger.Errorf("failed to list bookings: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return bookings, nil
}

// ListBookingSummaries flattens bookings with the name of the booked home.
func (uc *BookingUseCaseImpl) ListBookingSummaries(ctx context.Context, filter entity.BookingFilter) ([]entity.BookingSummary, error) {
	bookings, err := uc.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	homeNames := make(map[string]string)
	summaries := make([]entity.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		name, ok := homeNames[b.HomeID]
		if !ok {
			if home, err := uc.homeRepo.GetHomeByID(ctx, b.HomeID); err == nil {
				name = home.Name
			} else if !errors.Is(err, entity.ErrListingNotFound) {
				uc.logger.Warnf("failed to resolve home %s for booking summary: %v", b.HomeID, err)
			}
			homeNames[b.HomeID] = name
		}
		summaries = append(summaries, entity.BookingSummary{
			BookingID:   b.ID,
			BookedAt:    b.CreatedAt,
			CheckIn:     b.CheckIn,
			CheckOut:    b.CheckOut,
			ClientName:  b.ClientName,
			ClientEmail: b.ClientEmail,
			ClientPhone: b.ClientPhone,
			HomeID:      b.HomeID,
			HomeName:    name,
			TotalPrice:  b.TotalPrice,
		})
	}
	return summaries, nil
}

// CreateReviewLink issues the booking's review link. It succeeds at most once per booking.
func (uc *BookingUseCaseImpl) CreateReviewLink(ctx context.Context, bookingID string) (string, error) {
	booking, err := uc.GetBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if booking.HasReviewLink() {
		return "", entity.ErrReviewLinkAlreadyExists
	}

	link, err := uc.issueReviewLink(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrReviewLinkAlreadyExists):
			return "", entity.ErrReviewLinkAlreadyExists
		case errors.Is(err, entity.ErrBookingNotFound):
			return "", entity.ErrBookingNotFound
		}
		uc.logger.Errorf("failed to create review link for booking %s: %v", bookingID, err)
		return "", errors.New(errInternalServer)
	}
	uc.logger.Infof("review link created for booking %s", bookingID)
	return link, nil
}

// SendReviewLink emails the stored review link again. Dispatch failure is a warning.
func (uc *BookingUseCaseImpl) SendReviewLink(ctx context.Context, bookingID string) (*usecasecontract.BookingResult, error) {
	booking, err := uc.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.HasReviewLink() {
		return nil, entity.ErrReviewLinkNotGenerated
	}

	result := &usecasecontract.BookingResult{Booking: booking}
	subject, body := reviewRequestEmail(booking)
	if err := uc.notify(ctx, "review_link", booking.ClientEmail, subject, body); err != nil {
		result.Warning = reviewLinkWarning
		return result, nil
	}

	now := time.Now()
	if err := uc.bookingRepo.MarkReviewLinkSent(ctx, booking.ID, now); err != nil {
		uc.logger.Errorf("failed to record review link dispatch for booking %s: %v", booking.ID, err)
		return nil, errors.New(errInternalServer)
	}
	booking.ReviewLinkSentAt = &now
	return result, nil
}
