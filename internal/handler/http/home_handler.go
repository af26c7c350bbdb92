package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

type HomeHandler struct {
	homeUsecase usecasecontract.IHomeUseCase
}

func NewHomeHandler(homeUsecase usecasecontract.IHomeUseCase) *HomeHandler {
	return &HomeHandler{homeUsecase: homeUsecase}
}

func (h *HomeHandler) CreateHome(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateHomeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	home, err := h.homeUsecase.CreateHome(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Home created successfully", gin.H{"home": home})
}

func (h *HomeHandler) ListHomes(c *gin.Context) {
	homes, err := h.homeUsecase.ListHomes(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Homes retrieved successfully", gin.H{"homes": homes, "count": len(homes)})
}

// parseOptionalFloat reads a numeric query parameter. Absent or blank yields nil.
func parseOptionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, entity.Wrap(entity.ErrInvalidInput, "%s must be a number", key)
	}
	return &v, nil
}

// SearchHomes handles GET /homes/search?location=&minPrice=&maxPrice=&minRating=
func (h *HomeHandler) SearchHomes(c *gin.Context) {
	filter := entity.HomeSearchFilter{Location: c.Query("location")}
	var err error
	if filter.MinPrice, err = parseOptionalFloat(c, "minPrice"); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	if filter.MaxPrice, err = parseOptionalFloat(c, "maxPrice"); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	if filter.MinRating, err = parseOptionalFloat(c, "minRating"); err != nil {
		DomainErrorHandler(c, err)
		return
	}

	homes, err := h.homeUsecase.SearchHomes(c.Request.Context(), filter)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Homes retrieved successfully", gin.H{"homes": homes, "count": len(homes)})
}

// GetHome returns the home with its reviews' author names resolved.
func (h *HomeHandler) GetHome(c *gin.Context) {
	ctx := c.Request.Context()
	home, err := h.homeUsecase.GetHome(ctx, c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	reviews, err := h.homeUsecase.ListReviews(ctx, home.ID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Home retrieved successfully", gin.H{
		"home": dto.HomeWithReviews{Home: home, Reviews: reviews},
	})
}

func (h *HomeHandler) UpdateHome(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateHomeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	home, err := h.homeUsecase.UpdateHome(c.Request.Context(), identity, c.Param("id"), req.ToUpdate())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Home updated successfully", gin.H{"home": home})
}

func (h *HomeHandler) DeleteHome(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	if err := h.homeUsecase.DeleteHome(c.Request.Context(), identity, c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Home deleted successfully")
}

func (h *HomeHandler) ListReviews(c *gin.Context) {
	reviews, err := h.homeUsecase.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Reviews retrieved successfully", gin.H{"reviews": reviews, "count": len(reviews)})
}

func (h *HomeHandler) GetReview(c *gin.Context) {
	review, err := h.homeUsecase.GetReview(c.Request.Context(), c.Param("id"), c.Param("reviewId"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Review retrieved successfully", gin.H{"review": review})
}

// AddReview lets a signed-in user review a home directly.
func (h *HomeHandler) AddReview(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	author := usecasecontract.ReviewAuthor{ID: identity.UserID, Kind: entity.ReviewAuthorUser}
	home, err := h.homeUsecase.AddReview(c.Request.Context(), c.Param("id"), author, req.Comment, req.Rating)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Review added successfully", gin.H{"home": home, "rating": home.Rating})
}

func (h *HomeHandler) GetOwnerStats(c *gin.Context) {
	stats, err := h.homeUsecase.GetOwnerStats(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Owner stats retrieved successfully", gin.H{"stats": stats})
}

func (h *HomeHandler) GetOwnerStatsByHome(c *gin.Context) {
	stats, err := h.homeUsecase.GetOwnerStatsByHome(c.Request.Context(), c.Param("homeId"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Owner stats retrieved successfully", gin.H{"stats": stats})
}
