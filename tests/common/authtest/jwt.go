//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject string, role auth.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(subject, role.String())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject string, role auth.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(subject, role.String())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
