// Package webapi provides an enrich.Source implementation backed by a plain
// HTTP GET JSON endpoint. The same client serves both the subdomain
// enumeration and the reverse DNS APIs; only the base URL and the query
// parameter name differ.
package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"urlintel/pkg/enrich"
	"urlintel/pkg/serrors"

	"github.com/go-faster/jx"
)

// Client fetches enrichment payloads from one remote endpoint. It is safe
// for concurrent use.
type Client struct {
	httpClient *http.Client  // httpClient performs the requests
	baseURL    string        // baseURL is the endpoint without query string
	param      string        // param is the query parameter carrying the key
	timeout    time.Duration // timeout bounds a single lookup, 0 disables
}

// Lookup issues a GET to the endpoint with the key in the configured query
// parameter and returns the body verbatim. Non-2xx statuses and bodies that
// are not valid JSON are reported as errors; the payload itself is never
// interpreted.
func (c *Client) Lookup(ctx context.Context, key string) (json.RawMessage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set(c.param, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach %s", c.baseURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"lookup failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// the payload is passed through untouched, but it must at least be JSON
	if !jx.Valid(b) {
		return nil, fmt.Errorf("invalid JSON payload from %s", c.baseURL)
	}

	return b, nil
}

// Ensure Client conforms to the enrich.Source interface at compile time.
var _ enrich.Source = (*Client)(nil)

// New constructs a Client for the endpoint at baseURL, sending the lookup key
// in the query parameter named param. A non-zero timeout bounds each call so
// one slow source cannot stall a whole request.
func New(httpClient *http.Client, baseURL, param string, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		param:      param,
		timeout:    timeout,
	}
}
