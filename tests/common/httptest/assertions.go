//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, on a 2xx, decodes the body into
// targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct),
			"failed to decode response body: %s", w.Body.String())
	}
}

// AssertErrorEnvelope checks the status and, when expectedMsg is non-empty,
// that the error envelope message contains it. Booking endpoints write the
// {"error":{"message":...}} envelope; resource endpoints write a flat
// {"error":...} string — both shapes are accepted.
func AssertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if expectedMsg == "" {
		return
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "failed to decode error body: %s", w.Body.String()) {
		return
	}

	var msg string
	if err := json.Unmarshal(envelope.Error, &msg); err != nil {
		var nested struct {
			Message string `json:"message"`
		}
		if !assert.NoError(t, json.Unmarshal(envelope.Error, &nested), "unrecognized error shape: %s", w.Body.String()) {
			return
		}
		msg = nested.Message
	}
	assert.Contains(t, msg, expectedMsg)
}
