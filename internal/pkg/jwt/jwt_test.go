//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps subject and role", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken("operator", "operator")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Subject)
		assert.Equal(t, "operator", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issuedAt := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issuedAt }

		token, err := svc.GenerateToken("operator", "operator")
		require.NoError(t, err)

		svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := NewService("other-secret", time.Hour).GenerateToken("operator", "operator")
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
