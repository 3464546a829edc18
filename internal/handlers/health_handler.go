package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "wealthwatch/internal/errors"
	"wealthwatch/internal/storage"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store storage.Storage
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store storage.Storage) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck handles GET /healthz. It pings the configured storage backend
// and responds 503 when the backend is unreachable.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return SendError(c, apierrors.SystemServiceUnavailable,
			apierrors.WithDetails("Storage backend unreachable"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
