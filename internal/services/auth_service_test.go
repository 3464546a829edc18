package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"wealthwatch/internal/dto"
	"wealthwatch/internal/storage"
)

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

type AuthServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *storage.MemoryStorage
	service AuthServiceInterface
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = storage.NewMemoryStorage()
	s.Require().NoError(s.store.Connect(s.ctx))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewAuthService(s.store, NewPasswordService(bcrypt.MinCost), NewNoopMetrics(), logger)
}

func (s *AuthServiceSuite) register(email, password string) *dto.RegisterRequest {
	req := &dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     gofakeit.Name(),
	}
	_, err := s.service.Register(s.ctx, req)
	s.Require().NoError(err)
	return req
}

func (s *AuthServiceSuite) TestRegisterHashesPassword() {
	user, err := s.service.Register(s.ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		Name:     "Alice",
	})
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.NotEqual("hunter22", user.Password)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
}

func (s *AuthServiceSuite) TestRegisterRejectsDuplicateEmail() {
	s.register("bob@example.com", "password1")

	_, err := s.service.Register(s.ctx, &dto.RegisterRequest{
		Email:    "bob@example.com",
		Password: "password2",
		Name:     gofakeit.Name(),
	})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *AuthServiceSuite) TestLogin() {
	s.register("carol@example.com", "secret-pass")

	user, err := s.service.Login(s.ctx, &dto.LoginRequest{
		Email:    "carol@example.com",
		Password: "secret-pass",
	})
	s.Require().NoError(err)
	s.Equal("carol@example.com", user.Email)
}

func (s *AuthServiceSuite) TestLoginFailuresAreIndistinguishable() {
	s.register("dave@example.com", "secret-pass")

	_, unknownEmailErr := s.service.Login(s.ctx, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-pass",
	})
	_, wrongPasswordErr := s.service.Login(s.ctx, &dto.LoginRequest{
		Email:    "dave@example.com",
		Password: "wrong-pass",
	})

	s.ErrorIs(unknownEmailErr, ErrInvalidCredentials)
	s.ErrorIs(wrongPasswordErr, ErrInvalidCredentials)
	s.Equal(unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func (s *AuthServiceSuite) TestCurrentUser() {
	s.register("erin@example.com", "secret-pass")
	user, err := s.store.GetUserByEmail(s.ctx, "erin@example.com")
	s.Require().NoError(err)

	resolved, err := s.service.CurrentUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, resolved.Email)

	_, err = s.service.CurrentUser(s.ctx, "missing-id")
	s.ErrorIs(err, ErrUserNotFound)
}
