package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"wealthwatch/internal/config"
)

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceSuite))
}

type TokenServiceSuite struct {
	suite.Suite
	service TokenServiceInterface
}

func (s *TokenServiceSuite) SetupTest() {
	s.service = NewTokenService(&config.JWTConfig{
		Secret:        []byte("test-secret-for-token-suite"),
		TokenDuration: 7 * 24 * time.Hour,
		Issuer:        "wealthwatch",
	})
}

func (s *TokenServiceSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateToken("user-123")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("user-123", claims.UserID)
	s.Equal("wealthwatch", claims.Issuer)
}

func (s *TokenServiceSuite) TestGenerateRejectsEmptyUserID() {
	_, _, err := s.service.GenerateToken("")
	s.Error(err)
}

func (s *TokenServiceSuite) TestValidateRejectsEmptyToken() {
	_, err := s.service.ValidateToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceSuite) TestValidateRejectsMalformedToken() {
	_, err := s.service.ValidateToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestValidateRejectsTamperedToken() {
	token, _, err := s.service.GenerateToken("user-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token + "x")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestValidateRejectsWrongSecret() {
	other := NewTokenService(&config.JWTConfig{
		Secret:        []byte("a-different-secret"),
		TokenDuration: time.Hour,
		Issuer:        "wealthwatch",
	})
	token, _, err := other.GenerateToken("user-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestValidateRejectsExpiredToken() {
	expired := NewTokenService(&config.JWTConfig{
		Secret:        []byte("test-secret-for-token-suite"),
		TokenDuration: -time.Minute,
		Issuer:        "wealthwatch",
	})
	token, _, err := expired.GenerateToken("user-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceSuite) TestValidateRejectsWrongIssuer() {
	other := NewTokenService(&config.JWTConfig{
		Secret:        []byte("test-secret-for-token-suite"),
		TokenDuration: time.Hour,
		Issuer:        "someone-else",
	})
	token, _, err := other.GenerateToken("user-123")
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}
