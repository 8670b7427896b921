//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginOperator logs in through the API and returns the bearer token.
func LoginOperator(t *testing.T, router *gin.Engine, operatorID, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{OperatorID: operatorID, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.AccessToken, "access token missing from login response")
	return body.AccessToken
}
