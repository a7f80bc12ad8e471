package client

import (
	"errors"

	apierrors "github.com/ternfeed/tern/client/internal/errors"
)

// ErrInvalidBaseURL is returned by New when the base URL does not use the
// http or https scheme.
var ErrInvalidBaseURL = errors.New("base URL must start with http:// or https://")

// ErrNoCredentials is returned by New when neither WithAPIKey nor
// WithBasicAuth was supplied.
var ErrNoCredentials = errors.New("no credentials: configure WithAPIKey or WithBasicAuth")

// Re-export the shared SDK error types so callers can classify failures by
// importing the client package alone.
type (
	// APIError describes a request the server rejected with a status code
	// outside the expected range.
	APIError = apierrors.APIError
	// Kind is the coarse classification of an APIError.
	Kind = apierrors.Kind
)

const (
	KindClient       = apierrors.KindClient
	KindBadRequest   = apierrors.KindBadRequest
	KindUnauthorized = apierrors.KindUnauthorized
	KindForbidden    = apierrors.KindForbidden
	KindNotFound     = apierrors.KindNotFound
	KindServer       = apierrors.KindServer
)

// AsAPIError unwraps err and returns the underlying *APIError, if any.
func AsAPIError(err error) (*APIError, bool) { return apierrors.AsAPIError(err) }

// IsBadRequest reports whether err is an APIError for HTTP 400.
func IsBadRequest(err error) bool { return apierrors.IsBadRequest(err) }

// IsUnauthorized reports whether err is an APIError for HTTP 401.
func IsUnauthorized(err error) bool { return apierrors.IsUnauthorized(err) }

// IsForbidden reports whether err is an APIError for HTTP 403.
func IsForbidden(err error) bool { return apierrors.IsForbidden(err) }

// IsNotFound reports whether err is an APIError for HTTP 404.
func IsNotFound(err error) bool { return apierrors.IsNotFound(err) }

// IsServerError reports whether err is an APIError for HTTP 5xx.
func IsServerError(err error) bool { return apierrors.IsServerError(err) }
