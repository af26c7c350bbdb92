package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
)

func validHomeRequest() dto.CreateHomeRequest {
	return dto.CreateHomeRequest{
		Name:        "Cabin",
		Description: "Quiet cabin",
		Location:    "Debre Zeit",
		Price:       80,
		ImageURLs:   []string{"https://img.example.com/1.jpg"},
	}
}

func TestCreateHome(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/homes", "user-token", validHomeRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	home := decode(t, w)["home"].(map[string]interface{})
	assert.Equal(t, "user-1", home["owner_id"])
}

func TestCreateHome_RequiresSession(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/homes", "", validHomeRequest())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateHome_ValidationError(t *testing.T) {
	s := newTestServer()
	req := validHomeRequest()
	req.Price = 0
	req.ImageURLs = nil
	w := s.do(http.MethodPost, "/api/v1/homes", "user-token", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Price' failed")
	assert.Contains(t, w.Body.String(), "Field validation for 'ImageURLs' failed")
}

func TestListHomes_InternalErrorHidesDetail(t *testing.T) {
	s := newTestServer()
	s.homes.ShouldFailList = true
	w := s.do(http.MethodGet, "/api/v1/homes", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestSearchHomes_ParsesFilters(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/homes/search?location=bish&minPrice=50&maxPrice=150&minRating=0", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bish", s.homes.LastFilter.Location)
	require.NotNil(t, s.homes.LastFilter.MinPrice)
	require.NotNil(t, s.homes.LastFilter.MaxPrice)
	assert.Equal(t, 50.0, *s.homes.LastFilter.MinPrice)
	assert.Equal(t, 150.0, *s.homes.LastFilter.MaxPrice)
	assert.EqualValues(t, 1, decode(t, w)["count"])
}

func TestSearchHomes_BadNumber(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/homes/search?minPrice=cheap", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "minPrice must be a number")
}

func TestGetHome_NotFound(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/homes/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "home not found", decode(t, w)["message"])
}

func TestGetHome_ResolvesReviewAuthors(t *testing.T) {
	s := newTestServer()
	s.homes.Homes["home-1"].AddReview(entity.Review{ID: "r1", AuthorID: "user-2", AuthorKind: entity.ReviewAuthorUser, Rating: 4})
	w := s.do(http.MethodGet, "/api/v1/homes/home-1", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"author_name":"author-user-2"`)
}

func TestUpdateHome_NonOwnerForbidden(t *testing.T) {
	s := newTestServer()
	name := "Hijacked"
	w := s.do(http.MethodPut, "/api/v1/homes/home-1", "other-token", dto.UpdateHomeRequest{Name: &name})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Lake House", s.homes.Homes["home-1"].Name)
}

func TestUpdateHome_Owner(t *testing.T) {
	s := newTestServer()
	name := "Lake Villa"
	w := s.do(http.MethodPut, "/api/v1/homes/home-1", "user-token", dto.UpdateHomeRequest{Name: &name})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lake Villa", s.homes.Homes["home-1"].Name)
}

func TestDeleteHome_Admin(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodDelete, "/api/v1/homes/home-1", "admin-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, s.homes.Homes, "home-1")
}

func TestAddReview_RecordsUserAuthor(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/homes/home-1/review", "other-token", dto.ReviewRequest{Comment: "Great", Rating: 4})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 4, decode(t, w)["rating"])
	assert.Equal(t, "user-2", s.homes.LastAuthor.ID)
	assert.Equal(t, entity.ReviewAuthorUser, s.homes.LastAuthor.Kind)
}

func TestAddReview_InvalidRating(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/v1/homes/home-1/review", "user-token", dto.ReviewRequest{Comment: "Meh", Rating: 6})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rating must be between 1 and 5", decode(t, w)["message"])
}

func TestGetReview_NotFound(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/homes/home-1/reviews/none", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOwnerStats(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/owner-stats/user-1", "user-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["total_homes"])
}

func TestOwnerStats_NoHomes(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/owner-stats/nobody", "user-token", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOwnerStatsByHome(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/api/v1/home-owner-stats/home-1", "user-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
