package usecase

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// AuthGuard authenticates session tokens against the signing secret and the revocation store.
type AuthGuard struct {
	tokens     TokenService
	revocation contract.IRevocationStore
	logger     usecasecontract.IAppLogger
}

func NewAuthGuard(tokens TokenService, revocation contract.IRevocationStore, logger usecasecontract.IAppLogger) *AuthGuard {
	return &AuthGuard{
		tokens:     tokens,
		revocation: revocation,
		logger:     logger,
	}
}

var _ usecasecontract.IAuthGuard = (*AuthGuard)(nil)

// Authenticate returns the identity carried by a valid, non-revoked session token.
func (g *AuthGuard) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, entity.ErrMissingToken
	}

	revoked, err := g.revocation.IsRevoked(ctx, token)
	if err != nil {
		g.logger.Errorf("failed to check token revocation: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if revoked {
		return nil, entity.ErrRevokedToken
	}

	claims, err := g.tokens.ParseSessionToken(token)
	if err != nil {
		// expired tokens are reported as invalid to the caller
		return nil, entity.ErrInvalidToken
	}
	if claims.UserID == "" || !claims.Role.IsValid() {
		return nil, entity.ErrInvalidToken
	}

	return &entity.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// Authorize fails with entity.ErrForbidden unless the identity holds one of roles.
func (g *AuthGuard) Authorize(identity entity.Identity, roles ...entity.UserRole) error {
	if !entity.HasRole(identity.Role, roles...) {
		return entity.ErrForbidden
	}
	return nil
}
