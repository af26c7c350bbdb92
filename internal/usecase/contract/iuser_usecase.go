package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// ProfileUpdate carries the optional profile fields. Nil means "leave unchanged".
type ProfileUpdate struct {
	Username           *string
	Address            *string
	PhoneNumber        *string
	IDNumber           *string
	CompanyName        *string
	CompanyDescription *string
	LanguagesSpoken    []string
}

// IUserUseCase defines the account operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, login, password string) (*entity.User, string, error)
	SignOut(ctx context.Context, accessToken string) error
	LoginWithOAuth(ctx context.Context, username, email string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, actor entity.Identity, userID string, update ProfileUpdate) (*entity.User, error)
	UpdateRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error)
	DeleteUser(ctx context.Context, actor entity.Identity, userID string) error
	EnsureInitialAdmin(ctx context.Context) error
}
