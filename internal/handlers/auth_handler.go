package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wealthwatch/internal/config"
	"wealthwatch/internal/dto"
	apierrors "wealthwatch/internal/errors"
	"wealthwatch/internal/services"
)

// TokenCookieName is the session cookie carrying the signed token.
const TokenCookieName = "token"

// AuthHandler handles the authentication endpoints. Successful register and
// login responses carry the token both in the body and as an http-only cookie.
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
	cfg          *config.Config
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(
	authService services.AuthServiceInterface,
	tokenService services.TokenServiceInterface,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

// Register handles POST /api/auth/register.
// Responds 201 with the user and token on success, 400 on validation failure
// or duplicate email.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			return SendError(c, apierrors.UserDuplicateEmail)
		}
		return SendSystemError(c, err)
	}

	token, expiresAt, err := h.tokenService.GenerateToken(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}
	h.setTokenCookie(c, token, expiresAt)

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

// Login handles POST /api/auth/login.
// Unknown email and wrong password produce the identical 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	token, expiresAt, err := h.tokenService.GenerateToken(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}
	h.setTokenCookie(c, token, expiresAt)

	return c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

// Logout handles POST /api/auth/logout. It clears the cookie unconditionally;
// there is no server-side session state to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearTokenCookie(c)
	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logged out successfully",
	})
}

// Me handles GET /api/auth/me, returning the authenticated user without the
// password hash.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
