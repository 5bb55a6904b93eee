package auth

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// Identity is the acting user of an authenticated request.
type Identity struct {
	UserID    string
	ExpiresAt time.Time
}

type contextKey string

const (
	identityKey contextKey = "identity"

	// IdentityKey is where the auth middleware stores the *Identity in echo.Context.
	IdentityKey = "identity"
)

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the identity from the context.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// IdentityFromEcho extracts the identity stored by Middleware.
func IdentityFromEcho(c echo.Context) (*Identity, bool) {
	if identity, ok := c.Get(IdentityKey).(*Identity); ok && identity != nil {
		return identity, true
	}
	return IdentityFromContext(c.Request().Context())
}
