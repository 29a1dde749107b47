package nhl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatusSuccess(t *testing.T) {
	for _, code := range []int{200, 201, 204, 299} {
		assert.NoError(t, classifyStatus(code, "https://example.test/x"), "status %d", code)
	}
}

func TestClassifyStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: 400, want: ErrBadRequest},
		{status: 401, want: ErrUnauthorized},
		{status: 404, want: ErrNotFound},
		{status: 429, want: ErrRateLimited},
		{status: 500, want: ErrServer},
		{status: 502, want: ErrServer},
		{status: 503, want: ErrServer},
		{status: 599, want: ErrServer},
		// Unmapped codes fall back to server-error.
		{status: 402, want: ErrServer},
		{status: 403, want: ErrServer},
		{status: 418, want: ErrServer},
		{status: 301, want: ErrServer},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := classifyStatus(tt.status, "https://example.test/x")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestClassifyStatusTotal(t *testing.T) {
	// Every non-2xx code classifies to exactly one known kind.
	kinds := []error{ErrBadRequest, ErrUnauthorized, ErrNotFound, ErrRateLimited, ErrServer}
	for code := 100; code < 600; code++ {
		err := classifyStatus(code, "u")
		if code >= 200 && code < 300 {
			assert.NoError(t, err)
			continue
		}
		matched := 0
		for _, kind := range kinds {
			if errors.Is(err, kind) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "status %d", code)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 404, URL: "https://api-web.nhle.com/v1/standings/now"}
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "standings/now")
	assert.True(t, err.IsNotFound())
}

func TestRequestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RequestError{URL: "https://api-web.nhle.com/v1/standings/now", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Shape: "Standing", Field: "points"}
	assert.Contains(t, err.Error(), "Standing")
	assert.Contains(t, err.Error(), "points")

	wrapped := &DecodeError{Shape: "Boxscore", Err: errors.New("unexpected end of JSON input")}
	assert.Contains(t, wrapped.Error(), "Boxscore")
	assert.Contains(t, wrapped.Error(), "unexpected end")
}
