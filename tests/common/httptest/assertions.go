//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorEnvelope mirrors httperr.Response.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail []string `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "failed to decode response JSON: %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	env := decodeError(t, w)
	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg, "error message mismatch")
	}
}

// AssertValidationDetail checks a 400 names the failing field and tag, e.g. "Phone: phone".
func AssertValidationDetail(t *testing.T, w *httptest.ResponseRecorder, fieldAndTag string) {
	t.Helper()

	assert.Equal(t, 400, w.Code, "unexpected status, body: %s", w.Body.String())
	assert.Contains(t, decodeError(t, w).Detail, fieldAndTag)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "failed to decode error response JSON: %s", w.Body.String())
	return env
}
