package providers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"commity/internal/llm"
)

// classifyStatus maps a non-2xx HTTP status to the error taxonomy. The
// taxonomy is closed: statuses outside the known set become
// BackendUnavailable carrying the status and a body excerpt, never a
// silent default.
func classifyStatus(provider string, status int, body []byte) *llm.Error {
	detail := snippet(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return llm.Errorf(llm.KindAuthenticationFailed, provider, "status %d: %s", status, detail)
	case status == http.StatusNotFound:
		return llm.Errorf(llm.KindModelNotFound, provider, "status %d: %s", status, detail)
	case status == http.StatusTooManyRequests:
		return llm.Errorf(llm.KindRateLimited, provider, "status %d: %s", status, detail)
	case status >= 500:
		return llm.Errorf(llm.KindBackendUnavailable, provider, "status %d: %s", status, detail)
	default:
		return llm.Errorf(llm.KindBackendUnavailable, provider, "unexpected status %d: %s", status, detail)
	}
}

// classifyTransport maps a failed round trip to Timeout or
// ConnectionFailed. A deadline means the backend was reachable but too
// slow; anything else (refused connection, unknown host) means it was not
// reachable at all.
func classifyTransport(provider string, err error) *llm.Error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return llm.WrapErr(llm.KindTimeout, provider, err)
	}
	return llm.WrapErr(llm.KindConnectionFailed, provider, err)
}

// marshalWithExtra serializes v, then merges extra keys into the resulting
// JSON object. Reserved keys set by v are never overridden.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, reserved := m[k]; !reserved {
			m[k] = val
		}
	}
	return json.Marshal(m)
}

const maxSnippetLen = 200

// snippet trims an error body down to a single short line for messages.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > maxSnippetLen {
		s = s[:maxSnippetLen] + "..."
	}
	if s == "" {
		s = "(empty body)"
	}
	return s
}

func trimBase(endpoint string) string {
	return strings.TrimRight(endpoint, "/")
}
