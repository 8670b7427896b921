//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	summaryURL = "/api/admin/summary"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		operatorID     string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", operatorID: "operator", password: e2e.OperatorPassword, expectedStatus: http.StatusOK},
		{name: "unknown operator", operatorID: "someone", password: e2e.OperatorPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", operatorID: "operator", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "short password", operatorID: "operator", password: "short", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{OperatorID: tt.operatorID, Password: tt.password}, "")
			s.Equal(tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestAdminAccess() {
	s.Run("token from login opens admin routes", func() {
		token := authtest.LoginOperator(s.T(), s.Router, "operator", e2e.OperatorPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, token)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("expired token is rejected", func() {
		token := s.jwt.CreateExpiredToken(s.T(), "operator", auth.RoleOperator)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("client role is forbidden", func() {
		token := s.jwt.GenerateToken(s.T(), "tg:1", auth.RoleClient)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("channel key does not open admin routes", func() {
		w := httptest.PerformChannelRequest(s.T(), s.Router, http.MethodGet, summaryURL, nil, s.Config.Channel.APIKey, "tg:1")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}
