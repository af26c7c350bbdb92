package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// Constants for common error messages
const (
	errInternalServer = "internal server error"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	revocation      contract.IRevocationStore
	hasher          contract.IHasher
	tokenService    TokenService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	revocation contract.IRevocationStore,
	hasher contract.IHasher,
	tokenService TokenService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		revocation:      revocation,
		hasher:          hasher,
		tokenService:    tokenService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration. New accounts always get the default role.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, entity.ErrMissingFields
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, entity.Wrap(entity.ErrInvalidInput, "invalid email format")
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, entity.Wrap(entity.ErrInvalidInput, "weak password: %v", err)
	}

	if err := uc.ensureUnique(ctx, "", username, email); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.ApplyProfileDefaults()

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user")
	}

	uc.logger.Infof("user %s registered", user.ID)
	return user, nil
}

// ensureUnique fails with ErrUserAlreadyExists when another account uses the username or email.
func (uc *UserUsecase) ensureUnique(ctx context.Context, selfID, username, email string) error {
	if email != "" {
		existing, err := uc.userRepo.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Errorf("failed to check for existing user by email: %v", err)
			return errors.New(errInternalServer)
		}
		if existing != nil && existing.ID != selfID {
			return entity.Wrap(entity.ErrUserAlreadyExists, "email %s is already registered", email)
		}
	}
	if username != "" {
		existing, err := uc.userRepo.GetUserByUsername(ctx, username)
		if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Errorf("failed to check for existing user by username: %v", err)
			return errors.New(errInternalServer)
		}
		if existing != nil && existing.ID != selfID {
			return entity.Wrap(entity.ErrUserAlreadyExists, "username %s is already taken", username)
		}
	}
	return nil
}

// Login verifies credentials (email or username) and issues a session token.
func (uc *UserUsecase) Login(ctx context.Context, login, password string) (*entity.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", entity.ErrMissingFields
	}

	var user *entity.User
	var err error
	if uc.validator.ValidateEmail(login) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, strings.ToLower(login))
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, _, err := uc.tokenService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate session token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}

	return user, token, nil
}

// SignOut revokes the presented session token until it would have expired anyway.
func (uc *UserUsecase) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return entity.ErrMissingToken
	}
	expiresAt := time.Now().Add(uc.config.GetSessionTokenTTL())
	if claims, err := uc.tokenService.ParseSessionToken(accessToken); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := uc.revocation.Revoke(ctx, accessToken, expiresAt); err != nil {
		uc.logger.Errorf("failed to revoke session token: %v", err)
		return errors.New("failed to revoke token")
	}
	return nil
}

// LoginWithOAuth signs in a user verified by an external provider, creating the account on first login.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, username, email string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", entity.ErrMissingFields
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	if user == nil {
		if username == "" {
			username = email
		}
		if taken, _ := uc.userRepo.GetUserByUsername(ctx, username); taken != nil {
			username = email
		}
		// OAuth accounts get an unusable random password
		secret, err := uc.randomGenerator.GenerateRandomToken(32)
		if err != nil {
			return nil, "", fmt.Errorf("failed to register user")
		}
		hashed, err := uc.hasher.HashPassword(secret)
		if err != nil {
			return nil, "", fmt.Errorf("failed to register user")
		}
		now := time.Now()
		user = &entity.User{
			ID:           uc.uuidGenerator.NewUUID(),
			Username:     username,
			Email:        email,
			PasswordHash: hashed,
			Role:         entity.DefaultRole(),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		user.ApplyProfileDefaults()
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return nil, "", fmt.Errorf("failed to register user")
		}
	}

	token, _, err := uc.tokenService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate session token for OAuth user: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, token, nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUserNotFound
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return users, nil
}

// UpdateProfile lets a user, or an admin, change profile details.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, actor entity.Identity, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	if !actor.CanManage(userID) {
		return nil, entity.ErrForbidden
	}

	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return nil, entity.Wrap(entity.ErrInvalidInput, "username cannot be empty")
		}
		if err := uc.ensureUnique(ctx, user.ID, username, ""); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if update.Address != nil {
		user.Address = update.Address
	}
	if update.PhoneNumber != nil {
		user.PhoneNumber = update.PhoneNumber
	}
	if update.IDNumber != nil {
		user.IDNumber = update.IDNumber
	}
	if update.CompanyName != nil {
		user.CompanyName = *update.CompanyName
	}
	if update.CompanyDescription != nil {
		user.CompanyDescription = *update.CompanyDescription
	}
	if update.LanguagesSpoken != nil {
		user.LanguagesSpoken = update.LanguagesSpoken
	}
	user.ApplyProfileDefaults()
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, errors.New("failed to update profile")
	}
	return updated, nil
}

// UpdateRole changes a user's role. Callers are admin-gated at the transport layer.
func (uc *UserUsecase) UpdateRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	if !role.IsValid() {
		return nil, entity.ErrInvalidRole
	}
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now()

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update role of user %s: %v", userID, err)
		return nil, errors.New("failed to update role")
	}
	uc.logger.Infof("user %s role set to %s", userID, role)
	return updated, nil
}

// DeleteUser removes an account. Only the account holder or an admin may do it.
func (uc *UserUsecase) DeleteUser(ctx context.Context, actor entity.Identity, userID string) error {
	if !actor.CanManage(userID) {
		return entity.ErrForbidden
	}
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.ErrUserNotFound
		}
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return errors.New(errInternalServer)
	}
	return nil
}

// EnsureInitialAdmin creates the first admin account when none exists.
func (uc *UserUsecase) EnsureInitialAdmin(ctx context.Context) error {
	count, err := uc.userRepo.CountUsersByRole(ctx, entity.UserRoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to look up admin users: %w", err)
	}
	if count > 0 {
		uc.logger.Infof("admin user already exists")
		return nil
	}

	username, email, password := uc.config.GetInitialAdmin()
	if password == "" {
		password, err = uc.randomGenerator.GenerateRandomToken(18)
		if err != nil {
			return fmt.Errorf("failed to generate admin password: %w", err)
		}
		uc.logger.Warnf("ADMIN_PASSWORD not set, generated password for %s: %s", email, password)
	}

	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	now := time.Now()
	admin := &entity.User{
		ID:                 uc.uuidGenerator.NewUUID(),
		Username:           username,
		Email:              strings.ToLower(email),
		PasswordHash:       hashed,
		Role:               entity.UserRoleAdmin,
		CompanyName:        "Admin Corp",
		CompanyDescription: "First admin user",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	admin.ApplyProfileDefaults()
	if err := uc.userRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	uc.logger.Infof("admin user created: %s", admin.Email)
	return nil
}
