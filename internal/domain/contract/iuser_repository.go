package contract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// IUserRepository persists user accounts. Lookups return entity.ErrUserNotFound when nothing matches.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// CountUsersByRole is used to find out whether an admin was already bootstrapped.
	CountUsersByRole(ctx context.Context, role entity.UserRole) (int64, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
