package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the context key under which the auth middleware stores
// the verified user id.
const UserIDContextKey = "user_id"

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the verified user id set by the auth middleware.
// Returns ErrUnauthorized if the id is missing or invalid.
func getUserIDFromContext(c echo.Context) (string, error) {
	userIDValue := c.Get(UserIDContextKey)
	if userIDValue == nil {
		return "", ErrUnauthorized
	}

	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}

	return userID, nil
}
