//go:build unit

package auth_test

import (
	"testing"

	"salon-booking/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Run("trims the operator id", func(t *testing.T) {
		c, err := auth.NewCredentials("  operator ", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "operator", c.OperatorID())
		assert.Equal(t, "s3cret-pass", c.Password().Value())
	})

	cases := []struct {
		name     string
		id       string
		password string
		errIs    error
	}{
		{name: "blank id", id: " ", password: "s3cret-pass", errIs: auth.ErrInvalidCredentials},
		{name: "short password", id: "operator", password: "short", errIs: auth.ErrPasswordTooWeak},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.NewCredentials(tc.id, tc.password)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"client", "operator"} {
		r, err := auth.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}
	_, err := auth.NewRole("admin")
	assert.ErrorIs(t, err, auth.ErrInvalidRole)
}
