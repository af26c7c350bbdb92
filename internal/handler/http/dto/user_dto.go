package dto

import (
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// SignupRequest is the body of POST /auth/signup. Any role in the body is ignored.
type SignupRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest accepts either an email or a username.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns whichever login name was supplied, email first.
func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

type UpdateProfileRequest struct {
	Username           *string  `json:"username"`
	Address            *string  `json:"address"`
	PhoneNumber        *string  `json:"phone_number"`
	IDNumber           *string  `json:"id_number"`
	CompanyName        *string  `json:"company_name"`
	CompanyDescription *string  `json:"company_description"`
	LanguagesSpoken    []string `json:"languages_spoken"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,userrole"`
}

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	Address            *string  `json:"address,omitempty"`
	PhoneNumber        *string  `json:"phone_number,omitempty"`
	IDNumber           *string  `json:"id_number,omitempty"`
	CompanyName        string   `json:"company_name"`
	CompanyDescription string   `json:"company_description"`
	LanguagesSpoken    []string `json:"languages_spoken"`
	CreatedAt          string   `json:"created_at"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Role:               string(user.Role),
		Address:            user.Address,
		PhoneNumber:        user.PhoneNumber,
		IDNumber:           user.IDNumber,
		CompanyName:        user.CompanyName,
		CompanyDescription: user.CompanyDescription,
		LanguagesSpoken:    user.LanguagesSpoken,
		CreatedAt:          user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(*u))
	}
	return out
}
