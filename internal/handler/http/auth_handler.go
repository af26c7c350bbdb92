package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

const (
	oauthStateCookie = "oauthState"
	googleUserInfo   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// AuthHandler handles sign-in through Google.
type AuthHandler struct {
	UserUseCase usecasecontract.IUserUseCase
	oauthConfig *oauth2.Config
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, cfg usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{
		UserUseCase: uc,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GetGoogleClientID(),
			ClientSecret: cfg.GetGoogleClientSecret(),
			RedirectURL:  cfg.GetAppBaseURL() + "/api/v1/auth/google/callback",
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *AuthHandler) enabled(c *gin.Context) bool {
	if h.oauthConfig.ClientID == "" || h.oauthConfig.ClientSecret == "" {
		ErrorHandler(c, http.StatusNotImplemented, "Google sign-in is not configured")
		return false
	}
	return true
}

func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	if !h.enabled(c) {
		return
	}
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
		return
	}
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	if !h.enabled(c) {
		return
	}
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || c.Query("state") != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return
	}

	ctx := c.Request.Context()
	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "failed to exchange authorization code", Error: err.Error()})
		return
	}

	resp, err := h.oauthConfig.Client(ctx, token).Get(googleUserInfo)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "failed to get user info", Error: err.Error()})
		return
	}
	defer resp.Body.Close()

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "failed to decode user info", Error: err.Error()})
		return
	}

	user, sessionToken, err := h.UserUseCase.LoginWithOAuth(ctx, info.Name, info.Email)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, "Login successful", gin.H{
		"user":  dto.ToUserResponse(*user),
		"token": sessionToken,
	})
}
