package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wealthwatch/internal/dto"
	"wealthwatch/internal/models"
	"wealthwatch/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login, and identity resolution.
type AuthService struct {
	store           storage.Storage
	passwordService PasswordServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	store storage.Storage,
	passwordService PasswordServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		store:           store,
		passwordService: passwordService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Register creates a new user account. The pre-insert email lookup gives the
// common duplicate case a clean error without touching bcrypt; the storage
// layer's uniqueness constraint closes the race between the check and the
// insert, so concurrent registrations with the same email cannot both succeed.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	_, err := s.store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		s.metrics.RecordAuthEvent("register_duplicate_email")
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			s.metrics.RecordAuthEvent("register_duplicate_email")
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.RecordAuthEvent("register_success")
	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates a user by email and password. Unknown emails and wrong
// passwords return the identical error so user existence is never leaked.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.metrics.RecordAuthEvent("login_failed")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.Password) {
		s.metrics.RecordAuthEvent("login_failed")
		return nil, ErrInvalidCredentials
	}

	s.metrics.RecordAuthEvent("login_success")
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, nil
}

// CurrentUser resolves a verified token's user id to the full user record.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
