package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "storefront/internal/errors"
)

// DefaultTokenExpiry is the lifetime of tokens issued at login.
const DefaultTokenExpiry = time.Hour

// Claims represents JWT claims. The user id travels as "id".
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}

// TokenVerifier checks a bearer token and returns the identity it carries.
// Errors wrap errors.ErrInvalidToken.
type TokenVerifier interface {
	VerifyToken(token string) (*Identity, error)
}

// JWTService handles HMAC-signed JWT generation and validation.
type JWTService struct {
	secret []byte
	expiry time.Duration
	method jwt.SigningMethod
}

var (
	_ TokenIssuer   = (*JWTService)(nil)
	_ TokenVerifier = (*JWTService)(nil)
)

// NewJWTService creates a new JWT service with the given secret and token lifetime.
// A non-positive expiry falls back to DefaultTokenExpiry.
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		method: jwt.SigningMethodHS256,
	}
}

// IssueToken generates a signed token for the user, valid for the configured expiry.
func (s *JWTService) IssueToken(userID string) (string, error) {
	return s.issue(userID, time.Now())
}

func (s *JWTService) issue(userID string, now time.Time) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature and expiry and returns the embedded identity.
func (s *JWTService) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing id claim", apperrors.ErrInvalidToken)
	}

	identity := &Identity{UserID: claims.UserID}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
