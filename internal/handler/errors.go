package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "storefront/internal/errors"
)

var errInvalidBody = apperrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")

// respond maps err to an HTTP error. Server side failures are logged with
// the cause; the client only sees fallback.
func respond(c echo.Context, log *zap.Logger, err error, fallback string) error {
	httpErr := apperrors.MapErrorToHTTP(err, fallback)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error(fallback,
			zap.Error(err),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
	}
	return httpErr.Echo()
}
