package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser     bool
	ShouldFailLogin          bool
	ShouldFailSignOut        bool
	ShouldFailGetByID        bool
	ShouldFailUpdateUser     bool
	ShouldFailUpdateRole     bool
	ShouldFailDeleteUser     bool
	ShouldFailLoginWithOAuth bool

	// Return values
	MockUser        entity.User
	MockAccessToken string

	// Recorded arguments
	SignedOutToken string
	LastActor      entity.Identity
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, entity.Wrap(entity.ErrUserAlreadyExists, "email %s is already registered", email)
	}
	u := m.MockUser
	u.Username, u.Email = username, email
	return &u, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, login, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) SignOut(ctx context.Context, accessToken string) error {
	if m.ShouldFailSignOut {
		return errors.New("redis down")
	}
	m.SignedOutToken = accessToken
	return nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, username, email string) (*entity.User, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return nil, "", errors.New("oauth login failed")
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrUserNotFound
	}
	u := m.MockUser
	u.ID = userID
	return &u, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, actor entity.Identity, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	m.LastActor = actor
	if m.ShouldFailUpdateUser || !actor.CanManage(userID) {
		return nil, entity.ErrForbidden
	}
	u := m.MockUser
	u.ID = userID
	if update.Username != nil {
		u.Username = *update.Username
	}
	return &u, nil
}

func (m *MockUserUsecase) UpdateRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	if m.ShouldFailUpdateRole {
		return nil, entity.ErrUserNotFound
	}
	u := m.MockUser
	u.ID, u.Role = userID, role
	return &u, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, actor entity.Identity, userID string) error {
	m.LastActor = actor
	if m.ShouldFailDeleteUser || !actor.CanManage(userID) {
		return entity.ErrForbidden
	}
	return nil
}

func (m *MockUserUsecase) EnsureInitialAdmin(ctx context.Context) error {
	return nil
}
