package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// DomainErrorHandler maps a use case error to its status code.
func DomainErrorHandler(c *gin.Context, err error) {
	status, body := dto.NewErrorResponse(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

// SuccessHandler writes {message, ...payload}.
func SuccessHandler(c *gin.Context, statusCode int, message string, payload gin.H) {
	body := gin.H{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Error: err.Error()})
		return err
	}
	return nil
}

// requireIdentity returns the authenticated caller or writes 401.
func requireIdentity(c *gin.Context) (entity.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		DomainErrorHandler(c, entity.ErrMissingToken)
		return entity.Identity{}, false
	}
	return identity, true
}
