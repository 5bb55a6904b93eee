package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "storefront/internal/errors"
)

const tokenSeenKey = "auth.token_seen"

// Middleware guards protected routes. It reads "Authorization: Bearer <token>",
// verifies it with verifier and exposes the identity through IdentityFromEcho
// and IdentityFromContext. Failures stop the chain with a 401.
func Middleware(verifier TokenVerifier, log *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  IdentityKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			c.Set(tokenSeenKey, true)
			identity, err := verifier.VerifyToken(token)
			if err != nil {
				return nil, err
			}
			return identity, nil
		},
		SuccessHandler: func(c echo.Context) {
			identity, ok := c.Get(IdentityKey).(*Identity)
			if !ok {
				return
			}
			req := c.Request()
			c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			cause := apperrors.ErrMissingToken
			if seen, _ := c.Get(tokenSeenKey).(bool); seen || errors.Is(err, apperrors.ErrInvalidToken) {
				cause = apperrors.ErrInvalidToken
			}
			log.Debug("auth rejected",
				zap.String("path", c.Path()),
				zap.String("reason", cause.Error()),
				zap.Error(err),
			)
			return apperrors.MapErrorToHTTP(cause, "").Echo()
		},
	})
}
