// Package api implements the single-round-trip request layer of the SDK.
// Every function composes one URL, issues one HTTP request, and maps the
// response to a decoded value or a classified error. Retries, caching, and
// concurrency are left to callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apierrors "github.com/ternfeed/tern/client/internal/errors"
)

// apiVersion prefixes every endpoint path except the bare version probe.
const apiVersion = 1

// endpoint builds a versioned API URL from the normalized base URL.
func endpoint(baseURL, path string) string {
	return fmt.Sprintf("%s/v%d%s", baseURL, apiVersion, path)
}

// anyBelow400 marks calls whose success contract is "not an error status":
// the refresh family and bulk status updates return varying 2xx codes across
// server versions, with or without a body.
const anyBelow400 = 0

// doJSON performs one round trip with an optional JSON request body and an
// optional JSON response decode. wantStatus is the exact success status;
// anyBelow400 accepts any status under 400 and ignores the body. Authentication
// headers are added by the transport layer.
func doJSON(ctx context.Context, hc *http.Client, method, url string, in any, wantStatus int, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !statusOK(resp.StatusCode, wantStatus) {
		return apierrors.FromResponse(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// doText performs a GET round trip and returns the raw response body on 200.
func doText(ctx context.Context, hc *http.Client, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", apierrors.FromResponse(resp)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// doRawUpload performs one round trip sending payload verbatim, without a
// JSON content type, and decodes a JSON response on success.
func doRawUpload(ctx context.Context, hc *http.Client, method, url, payload string, wantStatus int, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(payload))
	if err != nil {
		return err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return apierrors.FromResponse(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusOK(status, want int) bool {
	if want == anyBelow400 {
		return status < 400
	}
	return status == want
}
