package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "storefront/internal/errors"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness routes.
type HealthHandler struct {
	store Pinger
	log   *zap.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

// Root godoc
// @Summary Greeting
// @Tags health
// @Produce plain
// @Success 200 {string} string "Hello World!"
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Hello World!")
}

// Healthz godoc
// @Summary Store health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {object} errors.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("store ping failed", zap.Error(err))
		return apperrors.NewHTTPError(http.StatusServiceUnavailable, "store unavailable").Echo()
	}
	return c.String(http.StatusOK, "ok")
}
