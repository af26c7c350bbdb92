package usecase_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/config"
	jwtinfra "github.com/mikiasgoitom/HomeStay/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/HomeStay/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/HomeStay/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/store"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/validator"
	"github.com/mikiasgoitom/HomeStay/internal/usecase"
)

var errStoreDown = errors.New("store down")

// fakeUserRepo is an in-memory contract.IUserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) ListUsers(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUserRepo) CountUsersByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, entity.ErrUserNotFound
	}
	u := *user
	r.users[u.ID] = &u
	c := u
	return &c, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entity.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeHomeRepo is an in-memory contract.IHomeRepository with version checks.
type fakeHomeRepo struct {
	mu    sync.Mutex
	homes map[string]*entity.Home

	// forcedConflicts makes the next N SaveReviews calls fail with a version conflict.
	forcedConflicts int
	saveCalls       int
	failGet         bool
}

func newFakeHomeRepo() *fakeHomeRepo {
	return &fakeHomeRepo{homes: map[string]*entity.Home{}}
}

func cloneHome(h *entity.Home) *entity.Home {
	c := *h
	c.Reviews = append([]entity.Review{}, h.Reviews...)
	c.ImageURLs = append([]string{}, h.ImageURLs...)
	c.Amenities = append([]string{}, h.Amenities...)
	return &c
}

func (r *fakeHomeRepo) CreateHome(ctx context.Context, home *entity.Home) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.homes[home.ID] = cloneHome(home)
	return nil
}

func (r *fakeHomeRepo) GetHomeByID(ctx context.Context, homeID string) (*entity.Home, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet {
		return nil, errStoreDown
	}
	h, ok := r.homes[homeID]
	if !ok {
		return nil, entity.ErrListingNotFound
	}
	return cloneHome(h), nil
}

func (r *fakeHomeRepo) list(match func(*entity.Home) bool) []*entity.Home {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Home{}
	for _, h := range r.homes {
		if match(h) {
			out = append(out, cloneHome(h))
		}
	}
	return out
}

func (r *fakeHomeRepo) ListHomes(ctx context.Context) ([]*entity.Home, error) {
	return r.list(func(*entity.Home) bool { return true }), nil
}

func (r *fakeHomeRepo) SearchHomes(ctx context.Context, filter entity.HomeSearchFilter) ([]*entity.Home, error) {
	return r.list(filter.Matches), nil
}

func (r *fakeHomeRepo) ListHomesByOwner(ctx context.Context, ownerID string) ([]*entity.Home, error) {
	return r.list(func(h *entity.Home) bool { return h.OwnerID == ownerID }), nil
}

func (r *fakeHomeRepo) UpdateHomeDetails(ctx context.Context, home *entity.Home) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.homes[home.ID]
	if !ok {
		return entity.ErrListingNotFound
	}
	updated := cloneHome(home)
	updated.OwnerID = stored.OwnerID
	updated.Reviews = stored.Reviews
	updated.Rating = stored.Rating
	updated.Version = stored.Version
	r.homes[home.ID] = updated
	return nil
}

func (r *fakeHomeRepo) DeleteHome(ctx context.Context, homeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.homes[homeID]; !ok {
		return entity.ErrListingNotFound
	}
	delete(r.homes, homeID)
	return nil
}

func (r *fakeHomeRepo) SaveReviews(ctx context.Context, homeID string, reviews []entity.Review, rating float64, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	h, ok := r.homes[homeID]
	if !ok {
		return entity.ErrListingNotFound
	}
	if r.forcedConflicts > 0 {
		r.forcedConflicts--
		return entity.ErrVersionConflict
	}
	if h.Version != expectedVersion {
		return entity.ErrVersionConflict
	}
	h.Reviews = append([]entity.Review{}, reviews...)
	h.Rating = rating
	h.Version++
	return nil
}

func (r *fakeHomeRepo) GetOwnerStats(ctx context.Context, ownerID string) (*entity.OwnerStats, error) {
	homes, _ := r.ListHomesByOwner(ctx, ownerID)
	stats := &entity.OwnerStats{OwnerID: ownerID}
	var sum float64
	for _, h := range homes {
		stats.TotalHomes++
		stats.TotalReviews += len(h.Reviews)
		sum += h.Rating
	}
	if stats.TotalHomes > 0 {
		stats.AverageRating = sum / float64(stats.TotalHomes)
	}
	return stats, nil
}

// fakeBookingRepo is an in-memory contract.IBookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*entity.Booking{}}
}

func (r *fakeBookingRepo) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := *booking
	r.bookings[b.ID] = &b
	return nil
}

func (r *fakeBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, entity.ErrBookingNotFound
	}
	c := *b
	return &c, nil
}

func (r *fakeBookingRepo) ListBookings(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Booking{}
	for _, b := range r.bookings {
		if filter.HomeID == "" || b.HomeID == filter.HomeID {
			c := *b
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) SetReviewLinkIfAbsent(ctx context.Context, bookingID, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return entity.ErrBookingNotFound
	}
	if b.ReviewLink != "" {
		return entity.ErrReviewLinkAlreadyExists
	}
	b.ReviewLink = link
	return nil
}

func (r *fakeBookingRepo) MarkReviewLinkSent(ctx context.Context, bookingID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return entity.ErrBookingNotFound
	}
	b.ReviewLinkSentAt = &at
	return nil
}

func (r *fakeBookingRepo) MarkReviewed(ctx context.Context, bookingID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return entity.ErrBookingNotFound
	}
	if b.ReviewedAt != nil {
		return entity.ErrReviewAlreadySubmitted
	}
	b.ReviewedAt = &at
	return nil
}

func (r *fakeBookingRepo) ClearReviewed(ctx context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return entity.ErrBookingNotFound
	}
	b.ReviewedAt = nil
	return nil
}

type sentEmail struct {
	To, Subject, Body string
}

// fakeEmailService records emails. ShouldFail makes every send fail.
type fakeEmailService struct {
	mu         sync.Mutex
	ShouldFail bool
	Sent       []sentEmail
}

func (s *fakeEmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ShouldFail {
		return errors.New("smtp unavailable")
	}
	s.Sent = append(s.Sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// fakeHomeCache is an in-memory contract.IHomeCache.
type fakeHomeCache struct {
	homes map[string]*entity.Home
	list  []*entity.Home
}

func newFakeHomeCache() *fakeHomeCache {
	return &fakeHomeCache{homes: map[string]*entity.Home{}}
}

func (c *fakeHomeCache) GetHome(ctx context.Context, homeID string) (*entity.Home, bool, error) {
	h, ok := c.homes[homeID]
	return h, ok, nil
}

func (c *fakeHomeCache) SetHome(ctx context.Context, home *entity.Home) error {
	c.homes[home.ID] = home
	return nil
}

func (c *fakeHomeCache) InvalidateHome(ctx context.Context, homeID string) error {
	delete(c.homes, homeID)
	return nil
}

func (c *fakeHomeCache) GetHomeList(ctx context.Context) ([]*entity.Home, bool, error) {
	return c.list, c.list != nil, nil
}

func (c *fakeHomeCache) SetHomeList(ctx context.Context, homes []*entity.Home) error {
	c.list = homes
	return nil
}

func (c *fakeHomeCache) InvalidateHomeLists(ctx context.Context) error {
	c.list = nil
	return nil
}

// env wires the use cases over in-memory repositories and the real token, hashing
// and validation services.
type env struct {
	cfg      *config.Config
	users    *fakeUserRepo
	homes    *fakeHomeRepo
	bookings *fakeBookingRepo
	email    *fakeEmailService
	tokens   usecase.TokenService
	revoked  *store.MemoryRevocationStore

	userUC    *usecase.UserUsecase
	homeUC    *usecase.HomeUseCaseImpl
	bookingUC *usecase.BookingUseCaseImpl
	reviewUC  *usecase.ReviewUseCaseImpl
	guard     *usecase.AuthGuard
}

func newEnv(t *testing.T) *env {
	t.Helper()
	cfg := &config.Config{
		AppBaseURL:               "http://localhost:8080",
		SessionTokenTTL:          time.Hour,
		ReviewTokenTTL:           7 * 24 * time.Hour,
		BookingSurchargeFactor:   1.04,
		EnforceGuestCapacity:     true,
		IssueReviewLinkOnBooking: false,
		NotificationTimeout:      time.Second,
		AdminUsername:            "admin",
		AdminEmail:               "Admin@HomeStay.local",
	}
	mgr, err := jwtinfra.NewJWTManager("test-secret-0123456789", cfg.SessionTokenTTL, cfg.ReviewTokenTTL)
	require.NoError(t, err)

	e := &env{
		cfg:      cfg,
		users:    newFakeUserRepo(),
		homes:    newFakeHomeRepo(),
		bookings: newFakeBookingRepo(),
		email:    &fakeEmailService{},
		tokens:   jwtinfra.NewTokenService(mgr),
	}
	appLogger := logger.NewWithWriter(io.Discard, logrus.DebugLevel)
	hasher := passwordservice.NewHasherWithCost(bcrypt.MinCost)
	ids := uuidgen.NewGenerator()
	v := validator.NewValidator()
	e.revoked = store.NewMemoryRevocationStore(hasher)

	e.userUC = usecase.NewUserUsecase(e.users, e.revoked, hasher, e.tokens, appLogger, cfg, v, ids, randomgenerator.NewRandomGenerator())
	e.homeUC = usecase.NewHomeUseCase(e.homes, e.users, e.bookings, ids, appLogger)
	e.bookingUC = usecase.NewBookingUseCase(e.bookings, e.homes, e.tokens, e.email, ids, v, cfg, appLogger)
	e.reviewUC = usecase.NewReviewUseCase(e.tokens, e.bookings, e.homeUC, appLogger)
	e.guard = usecase.NewAuthGuard(e.tokens, e.revoked, appLogger)
	return e
}

// seedHome stores a home owned by ownerID with the given nightly price.
func (e *env) seedHome(t *testing.T, id, ownerID string, price float64, maxGuests int) *entity.Home {
	t.Helper()
	h := &entity.Home{
		ID:        id,
		Name:      "Home " + id,
		Location:  "Addis Ababa",
		Price:     price,
		MaxGuests: maxGuests,
		OwnerID:   ownerID,
		Reviews:   []entity.Review{},
	}
	require.NoError(t, e.homes.CreateHome(context.Background(), h))
	return h
}

func (e *env) seedUser(t *testing.T, id, username string, role entity.UserRole) *entity.User {
	t.Helper()
	u := &entity.User{ID: id, Username: username, Email: username + "@example.com", Role: role}
	require.NoError(t, e.users.CreateUser(context.Background(), u))
	return u
}

func intPtr(n int) *int { return &n }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
