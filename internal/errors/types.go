// Package errors provides the typed error taxonomy for the client SDK.
// Every API response outside a call's success contract is classified by
// HTTP status into a small set of kinds so callers can branch on the kind
// instead of matching message strings.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the class of API failure derived from the HTTP status code.
type Kind int

const (
	// KindClient covers non-success statuses with no more specific kind.
	KindClient Kind = iota

	// KindBadRequest is a 400 response: the server rejected the request as malformed.
	KindBadRequest

	// KindUnauthorized is a 401 response: credentials are missing or invalid.
	KindUnauthorized

	// KindForbidden is a 403 response: authenticated but not permitted.
	KindForbidden

	// KindNotFound is a 404 response: the resource does not exist.
	KindNotFound

	// KindServer covers 5xx responses: the failure happened server-side.
	KindServer
)

// String returns a human-readable representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindServer:
		return "server error"
	case KindClient:
		return "client error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// APIError is the failure result for any API response whose status falls
// outside the per-call success contract. It retains the status code and the
// raw response body; the human-readable reason is extracted lazily by Reason,
// never at classification time.
type APIError struct {
	Kind        Kind
	StatusCode  int
	Method      string // HTTP method of the originating request, when known
	URL         string // target URL of the originating request, when known
	ContentType string // Content-Type header of the response
	Body        []byte // response body, capped at DefaultMaxBodyBytes
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Method != "" && e.URL != "" {
		return fmt.Sprintf("%s %s: server returned %d (%s)", e.Method, e.URL, e.StatusCode, e.Kind)
	}
	return fmt.Sprintf("server returned %d (%s)", e.StatusCode, e.Kind)
}

// Reason returns the server-provided error message when the response declared
// a JSON content type and the body is a JSON object carrying an
// "error_message" string, even an empty one. In every other case (no body,
// non-JSON content type, malformed JSON, non-object body, missing key) it
// returns "status_code=<code>". The body is parsed on each call, on demand,
// and parsing failures never propagate.
func (e *APIError) Reason() string {
	if isJSONContentType(e.ContentType) && len(e.Body) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(e.Body, &payload); err == nil {
			if msg, ok := payload["error_message"].(string); ok {
				return msg
			}
		}
	}
	return fmt.Sprintf("status_code=%d", e.StatusCode)
}

func isJSONContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json")
}

// AsAPIError unwraps err into an *APIError when one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsBadRequest reports whether err carries a 400 classification.
func IsBadRequest(err error) bool { return hasKind(err, KindBadRequest) }

// IsUnauthorized reports whether err carries a 401 classification.
func IsUnauthorized(err error) bool { return hasKind(err, KindUnauthorized) }

// IsForbidden reports whether err carries a 403 classification.
func IsForbidden(err error) bool { return hasKind(err, KindForbidden) }

// IsNotFound reports whether err carries a 404 classification.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsServerError reports whether err carries a 5xx classification.
func IsServerError(err error) bool { return hasKind(err, KindServer) }

func hasKind(err error, k Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == k
}
