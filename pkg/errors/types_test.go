package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorError(t *testing.T) {
	err := New(ErrCodeNotFound, "recipe not found")
	assert.Equal(t, "NOT_FOUND: recipe not found", err.Error())

	wrapped := Wrap(fmt.Errorf("sql: no rows"), ErrCodeDatabaseQuery, "lookup failed")
	assert.Contains(t, wrapped.Error(), "DATABASE_QUERY: lookup failed")
	assert.Contains(t, wrapped.Error(), "sql: no rows")
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeProvider, "transcript fetch failed")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestDefaultHTTPCodes(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeUnsupportedPlatform, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeRateLimit, http.StatusTooManyRequests},
		{ErrCodeEmptyTranscript, http.StatusInternalServerError},
		{ErrCodeExtractionFailed, http.StatusInternalServerError},
		{ErrCodeConfigRequired, http.StatusInternalServerError},
		{ErrCodeProvider, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.code, "x").GetHTTPCode())
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := UnsupportedPlatformError("https://example.com/x")
	assert.True(t, Is(err, ErrCodeUnsupportedPlatform))
	assert.False(t, Is(err, ErrCodeNotFound))
	assert.Equal(t, ErrCodeUnsupportedPlatform, GetCode(err))

	plain := errors.New("boom")
	assert.False(t, Is(plain, ErrCodeInternal))
	assert.Equal(t, ErrCodeInternal, GetCode(plain))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(plain))
}

func TestProviderError(t *testing.T) {
	err := ProviderError("transcript", 502, "upstream unavailable")
	assert.Equal(t, ErrCodeProvider, err.Code)
	assert.Contains(t, err.Message, "status 502")
	assert.Equal(t, 502, err.Details["status"])
}
