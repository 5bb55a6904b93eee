package auth

import (
	"encoding/base64"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "storefront/internal/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.IssueToken("64f1c0ffee0000000000abcd")
	require.NoError(t, err)

	identity, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", identity.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), identity.ExpiresAt, 5*time.Second)
}

func TestJWTService_DefaultExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", 0)
	assert.Equal(t, DefaultTokenExpiry, svc.expiry)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.issue("user-1", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_RejectsTampered(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	token, err := svc.IssueToken("user-1")
	require.NoError(t, err)

	t.Run("foreign secret", func(t *testing.T) {
		other := NewJWTService("other-secret", time.Hour)
		forged, err := other.IssueToken("user-1")
		require.NoError(t, err)

		_, err = svc.VerifyToken(forged)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("rewritten payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		exp := time.Now().Add(time.Hour).Unix()
		payload := `{"id":"attacker","exp":` + strconv.FormatInt(exp, 10) + `}`
		parts[1] = base64.RawURLEncoding.EncodeToString([]byte(payload))

		_, err := svc.VerifyToken(strings.Join(parts, "."))
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestJWTService_RejectsMissingID(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	token, err := svc.IssueToken("")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
