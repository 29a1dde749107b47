package nhl

import (
	"errors"
	"fmt"
)

// Classification sentinels. APIError values returned by the client
// match these through errors.Is, so callers can branch on kind without
// inspecting status codes themselves.
var (
	// ErrNotFound indicates the resource does not exist (404).
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the API rejected the request for rate
	// limiting (429).
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrBadRequest indicates a malformed request (400).
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates an authentication failure (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrServer covers 5xx responses and any unmapped status code.
	ErrServer = errors.New("server error")
)

// APIError is a classified HTTP failure: a response was received and
// its status code mapped to one of the sentinel kinds.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nhl api: request to %s failed: %s (status %d)", e.URL, e.kind(), e.StatusCode)
}

// Is links an APIError to its classification sentinel.
func (e *APIError) Is(target error) bool {
	return target == e.kind()
}

// kind maps the status code to a sentinel. The mapping is total:
// every non-2xx code has a defined outcome, with server-error as the
// conservative fallback for anything unmapped.
func (e *APIError) kind() error {
	switch {
	case e.StatusCode == 400:
		return ErrBadRequest
	case e.StatusCode == 401:
		return ErrUnauthorized
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 429:
		return ErrRateLimited
	default:
		return ErrServer
	}
}

// IsNotFound reports whether the error is the not-found kind.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// RequestError is a transport-level failure: no HTTP response was
// obtained at all (connection refused, timeout, TLS, DNS).
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("nhl api: request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError is a success-path failure: the HTTP request succeeded
// but the body violated the target shape's contract. Field names the
// missing required field when that is the violation.
type DecodeError struct {
	Shape string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: missing required field %q", e.Shape, e.Field)
	}
	return fmt.Sprintf("decode %s: %v", e.Shape, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// classifyStatus turns a status code into a typed error, or nil for
// any 2xx code.
func classifyStatus(status int, url string) error {
	if status >= 200 && status < 300 {
		return nil
	}
	return &APIError{StatusCode: status, URL: url}
}
