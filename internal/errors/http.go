package errors

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps how much of an error response body is retained for
// lazy reason extraction. Bodies beyond the cap are truncated, not buffered.
const DefaultMaxBodyBytes = 64 * 1024

// FromResponse classifies a non-success HTTP response into an *APIError.
// It drains up to DefaultMaxBodyBytes of the body so the caller can close the
// response immediately; reason extraction stays deferred until Reason is called.
func FromResponse(resp *http.Response) *APIError {
	apiErr := &APIError{
		Kind:        kindForStatus(resp.StatusCode),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if resp.Request != nil {
		apiErr.Method = resp.Request.Method
		apiErr.URL = resp.Request.URL.String()
	}
	if resp.Body != nil {
		body, err := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxBodyBytes))
		if err == nil {
			apiErr.Body = body
		}
	}
	return apiErr
}

// kindForStatus maps HTTP status codes to error kinds.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest:
		return KindBadRequest
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		// 402, 405..499 and any unexpected 3xx reaching classification.
		return KindClient
	}
}
