//go:build unit

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("operator-password")
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "operator-password"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong-password"), ErrComparisonFailed)
	assert.ErrorIs(t, ComparePassword(hash, ""), ErrInvalidPassword)
	assert.ErrorIs(t, ComparePassword("not-a-hash", "operator-password"), ErrInvalidHash)
}

func TestHashPasswordRejects(t *testing.T) {
	for name, pw := range map[string]string{
		"too short": "short",
		"too long":  strings.Repeat("a", MaxBytes+1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := HashPassword(pw)
			assert.ErrorIs(t, err, ErrInvalidPassword)
		})
	}
}
