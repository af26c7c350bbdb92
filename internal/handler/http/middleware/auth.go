package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID      = "userID"
	ContextUserRole    = "userRole"
	ContextIdentity    = "identity"
	ContextAccessToken = "accessToken"
)

func abortWithError(c *gin.Context, err error) {
	status, body := dto.NewErrorResponse(err)
	c.AbortWithStatusJSON(status, body)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware authenticates the session token and binds the caller to the context.
func AuthMiddleware(guard usecasecontract.IAuthGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, entity.ErrMissingToken)
			return
		}

		identity, err := guard.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserRole, identity.Role)
		c.Set(ContextIdentity, *identity)
		c.Set(ContextAccessToken, token)
		c.Next()
	}
}

// RequireRoles lets the request through only when the caller holds one of roles.
// It must run after AuthMiddleware.
func RequireRoles(guard usecasecontract.IAuthGuard, roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			abortWithError(c, entity.ErrMissingToken)
			return
		}
		if err := guard.Authorize(identity, roles...); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

// GetIdentity returns the caller bound by AuthMiddleware.
func GetIdentity(c *gin.Context) (entity.Identity, bool) {
	v, exists := c.Get(ContextIdentity)
	if !exists {
		return entity.Identity{}, false
	}
	identity, ok := v.(entity.Identity)
	return identity, ok
}
