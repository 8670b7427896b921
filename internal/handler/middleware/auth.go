package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/domain/cancellation"
	"salon-booking/internal/domain/client"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	HeaderChannelKey = "X-Channel-Key"
	HeaderUserID     = "X-User-ID"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

var (
	ErrMissingChannelKey = errors.New("missing or invalid channel key")
	ErrMissingUserID     = errors.New("missing or invalid user id")
	ErrMissingToken      = errors.New("missing bearer token")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrNotOperator       = errors.New("operator role required")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	channelKey     []byte
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, channel config.ChannelConfig) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		channelKey:     []byte(channel.APIKey),
	}
}

// RequireChannel admits calls from a chat front end: the shared channel key must
// match and X-User-ID names the end user the call acts for.
func (m *AuthMiddleware) RequireChannel() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := []byte(c.GetHeader(HeaderChannelKey))
		if len(m.channelKey) == 0 || subtle.ConstantTimeCompare(key, m.channelKey) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrMissingChannelKey, "Channel key required", nil)
			return
		}

		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if err := client.ValidateUserID(userID); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(ErrMissingUserID, err), "X-User-ID header required", nil)
			return
		}

		setIdentity(c, userID, auth.RoleClient)
		c.Next()
	}
}

// RequireOperator admits requests carrying an operator bearer token.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrMissingToken, "Access token required", nil)
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.Join(ErrInvalidToken, err), "Invalid or expired token", nil)
			return
		}
		if role != auth.RoleOperator {
			httperr.AbortWithError(c, http.StatusForbidden, ErrNotOperator, "Insufficient permissions", nil)
			return
		}

		setIdentity(c, subject, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func setIdentity(c *gin.Context, userID string, role auth.Role) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": userID,
		"role":    string(role),
	})
}

func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetUserRole(c *gin.Context) (auth.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(auth.Role)
	return role, ok
}

// GetActor describes who is acting on an appointment in this request.
func GetActor(c *gin.Context) (cancellation.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return cancellation.Actor{}, false
	}
	role, _ := GetUserRole(c)
	return cancellation.Actor{ID: id, Operator: role == auth.RoleOperator}, true
}
