package twitter95

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned when the service responds with a non-success status.
// Transport and decode failures are wrapped with %w instead and never carry
// an APIError.
type APIError struct {
	StatusCode int
	URL        string
	Snippet    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("twitter95: %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("twitter95: %s returned status %d body: %s", e.URL, e.StatusCode, e.Snippet)
}

// IsNotFound reports whether err is an APIError with a 404 status, which the
// backend uses for unknown user ids and user names.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
