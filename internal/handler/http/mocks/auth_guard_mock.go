package mocks

import (
	"context"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// MockAuthGuard maps raw tokens to identities. Unknown tokens are invalid.
type MockAuthGuard struct {
	Tokens  map[string]entity.Identity
	Revoked map[string]bool
}

var _ usecasecontract.IAuthGuard = (*MockAuthGuard)(nil)

func NewMockAuthGuard() *MockAuthGuard {
	return &MockAuthGuard{
		Tokens: map[string]entity.Identity{
			"user-token":  {UserID: "user-1", Role: entity.UserRoleUser},
			"other-token": {UserID: "user-2", Role: entity.UserRoleUser},
			"admin-token": {UserID: "admin-1", Role: entity.UserRoleAdmin},
		},
		Revoked: map[string]bool{},
	}
}

func (m *MockAuthGuard) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, entity.ErrMissingToken
	}
	if m.Revoked[token] {
		return nil, entity.ErrRevokedToken
	}
	identity, ok := m.Tokens[token]
	if !ok {
		return nil, entity.ErrInvalidToken
	}
	return &identity, nil
}

func (m *MockAuthGuard) Authorize(identity entity.Identity, roles ...entity.UserRole) error {
	if !entity.HasRole(identity.Role, roles...) {
		return entity.ErrForbidden
	}
	return nil
}
