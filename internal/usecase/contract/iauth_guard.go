package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

// IAuthGuard resolves and checks the caller of a protected operation.
type IAuthGuard interface {
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	Authorize(identity entity.Identity, roles ...entity.UserRole) error
}
