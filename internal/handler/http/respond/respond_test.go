package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusCreated, map[string]int{"count": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusBadRequest, errors.New("detail_level is invalid"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "detail_level is invalid", decodeError(t, rec))
}

func TestSafeError_PassesValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "required", err: errors.New("path is required")},
		{name: "invalid", err: errors.New("invalid detail level")},
		{name: "not found", err: errors.New("report not found")},
		{name: "no text", err: errors.New("no extractable text found in document")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, http.StatusBadRequest, tt.err)
			assert.Equal(t, tt.err.Error(), decodeError(t, rec))
		})
	}
}

func TestSafeError_MasksInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusInternalServerError, errors.New("pq: connection refused"))

	assert.Equal(t, "internal server error", decodeError(t, rec))
}

func TestSafeError_ServerCodeAlwaysMasked(t *testing.T) {
	// Even a "safe"-looking message is masked on a 5xx.
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusBadGateway, errors.New("upstream said not found"))

	assert.Equal(t, "internal server error", decodeError(t, rec))
}

func TestSafeError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusInternalServerError, nil)

	assert.Empty(t, rec.Body.String())
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "openai key",
			err:  errors.New("auth failed: sk-abcdefghijklmnop"),
			want: "auth failed: sk-****",
		},
		{
			name: "anthropic key",
			err:  errors.New("auth failed: sk-ant-api03-xyz123"),
			want: "auth failed: sk-ant-****",
		},
		{
			name: "database url",
			err:  errors.New("connect postgres://digest:hunter2@db:5432/reports"),
			want: "connect postgres://digest:****@db:5432/reports",
		},
		{
			name: "plain message",
			err:  errors.New("file too large"),
			want: "file too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeError(tt.err))
		})
	}
}

func TestSanitizeError_Nil(t *testing.T) {
	assert.Empty(t, SanitizeError(nil))
}
