package llm

import (
	"errors"
	"fmt"
)

// Kind classifies a failed generate attempt. The CLI maps each kind to a
// distinct actionable message, so classification happens here and nowhere
// downstream re-derives it from error text.
type Kind int

const (
	// KindConnectionFailed means the backend could not be reached at all
	// (refused connection, unknown host). For ollama this usually means
	// the server is not running.
	KindConnectionFailed Kind = iota
	// KindTimeout means the configured deadline elapsed before the
	// backend produced a response.
	KindTimeout
	// KindAuthenticationFailed covers HTTP 401 and 403.
	KindAuthenticationFailed
	// KindRateLimited covers HTTP 429.
	KindRateLimited
	// KindModelNotFound means the backend rejected the model identifier.
	KindModelNotFound
	// KindBackendUnavailable covers 5xx and other unexpected statuses.
	KindBackendUnavailable
	// KindMalformedResponse means the HTTP call succeeded but the body
	// did not match the provider's envelope.
	KindMalformedResponse
	// KindEmptyResponse means the backend answered successfully with no
	// usable text.
	KindEmptyResponse
)

func (k Kind) String() string {
	switch k {
	case KindConnectionFailed:
		return "connection failed"
	case KindTimeout:
		return "timeout"
	case KindAuthenticationFailed:
		return "authentication failed"
	case KindRateLimited:
		return "rate limited"
	case KindModelNotFound:
		return "model not found"
	case KindBackendUnavailable:
		return "backend unavailable"
	case KindMalformedResponse:
		return "malformed response"
	case KindEmptyResponse:
		return "empty response"
	}
	return "unknown"
}

// Error is a classified failure from a single generate attempt.
type Error struct {
	Kind     Kind
	Provider string
	// Message carries backend detail (status line, error body excerpt).
	Message string
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a classified error with a formatted detail message.
func Errorf(kind Kind, provider, format string, args ...any) *Error {
	return &Error{Kind: kind, Provider: provider, Message: fmt.Sprintf(format, args...)}
}

// WrapErr builds a classified error around an underlying cause.
func WrapErr(kind Kind, provider string, err error) *Error {
	return &Error{Kind: kind, Provider: provider, Err: err}
}

// KindOf extracts the classification from err, looking through wrapping.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is (or wraps) a classified error of kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
