// Package httpclient provides the single outbound request primitive used
// by both provider adapters: one bounded GET, JSON-decoded, with every
// failure mode classified as an errs.NetworkError.
package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"poi-gateway/internal/errs"
)

// DefaultTimeout bounds a provider call when the request does not carry
// its own timeout.
const DefaultTimeout = 3000 * time.Millisecond

// maxErrorBodyBytes limits how much of an upstream error body is kept
// for logging.
const maxErrorBodyBytes = 8 << 10

// Request describes one outbound GET.
type Request struct {
	URL     string
	Header  http.Header
	Timeout time.Duration
}

// Client wraps a shared *http.Client. All adapters reuse one instance so
// connection pooling is shared across providers and requests.
type Client struct {
	httpClient *http.Client
}

// New returns a Client around the given *http.Client. A nil argument
// falls back to a plain client; per-call deadlines come from the request
// context, not from http.Client.Timeout.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// GetJSON issues exactly one GET and decodes the JSON response into v.
//
// Failure classification:
//   - transport error or timeout: NetworkError with no status code
//   - status outside [200, 300): NetworkError carrying the upstream
//     status and the (truncated) body as cause
//   - 2xx with an unparsable body: NetworkError with the decode error
//     as cause
//
// The response body is closed on every path.
func (c *Client) GetJSON(ctx context.Context, r Request, v any) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return errs.NewNetworkError("invalid upstream request: "+err.Error(), 0, err)
	}
	for key, values := range r.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewNetworkError("upstream request failed", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return errs.NewNetworkError(
			"upstream returned non-2xx status",
			resp.StatusCode,
			fmt.Errorf("upstream body: %s", body),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errs.NewNetworkError("could not parse upstream response", 0, err)
	}

	return nil
}

// IsTimeout reports whether a NetworkError was caused by the per-call
// deadline expiring. Used only for logging detail.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
