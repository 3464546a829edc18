package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	apierrors "wealthwatch/internal/errors"
	"wealthwatch/internal/handlers"
	"wealthwatch/internal/services"
)

// RequireAuth creates a middleware that resolves the session token. The
// http-only cookie is the primary transport; a bearer Authorization header is
// accepted as a fallback for non-browser clients. A request with no token at
// all gets 401, a request with a token that fails verification gets 403.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidToken)
			}

			c.Set(handlers.UserIDContextKey, claims.UserID)

			return next(c)
		}
	}
}

// extractToken returns the session token from the cookie, or from a bearer
// Authorization header when no cookie is present.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(handlers.TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
