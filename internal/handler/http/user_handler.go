package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
	SignOut(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateCurrentUser(*gin.Context)
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
	UpdateRole(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Signup handles user registration
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, "User created successfully", gin.H{"user": dto.ToUserResponse(*user)})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, "Login successful", gin.H{
		"user":  dto.ToUserResponse(*user),
		"token": token,
	})
}

// SignOut revokes the session token the request was authenticated with.
func (h *UserHandler) SignOut(c *gin.Context) {
	token := c.GetString(middleware.ContextAccessToken)
	if err := h.userUsecase.SignOut(c.Request.Context(), token); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Signed out successfully")
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), identity.UserID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "User retrieved successfully", gin.H{"user": dto.ToUserResponse(*user)})
}

func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	h.updateProfile(c, identity, identity.UserID)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Users retrieved successfully", gin.H{"users": dto.ToUserResponses(users)})
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "User retrieved successfully", gin.H{"user": dto.ToUserResponse(*user)})
}

// UpdateUser changes another user's profile. Only the user or an admin may do it.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	h.updateProfile(c, identity, c.Param("id"))
}

func (h *UserHandler) updateProfile(c *gin.Context, actor entity.Identity, userID string) {
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	update := usecasecontract.ProfileUpdate{
		Username:           req.Username,
		Address:            req.Address,
		PhoneNumber:        req.PhoneNumber,
		IDNumber:           req.IDNumber,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		LanguagesSpoken:    req.LanguagesSpoken,
	}
	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), actor, userID, update)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Profile updated successfully", gin.H{"user": dto.ToUserResponse(*updated)})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	if err := h.userUsecase.DeleteUser(c.Request.Context(), identity, c.Param("id")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted successfully")
}

// UpdateRole is mounted behind RequireRoles(admin).
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	updated, err := h.userUsecase.UpdateRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "User role updated successfully", gin.H{"user": dto.ToUserResponse(*updated)})
}
