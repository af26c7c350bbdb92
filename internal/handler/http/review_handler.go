package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

type ReviewHandler struct {
	reviewUsecase usecasecontract.IReviewUseCase
}

func NewReviewHandler(reviewUsecase usecasecontract.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// SubmitViaLink accepts a review authorized by a booking's review token,
// taken from the body or the token query parameter.
func (h *ReviewHandler) SubmitViaLink(c *gin.Context) {
	var req dto.ReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		token = strings.TrimSpace(c.Query("token"))
	}

	home, err := h.reviewUsecase.SubmitReviewViaToken(c.Request.Context(), c.Param("id"), token, req.Comment, req.Rating)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Review submitted successfully", gin.H{"home": home, "rating": home.Rating})
}
