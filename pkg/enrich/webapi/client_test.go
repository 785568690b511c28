package webapi_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
	"urlintel/pkg/enrich/webapi"

	"urlintel/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *webapi.Client {
	return webapi.New(&http.Client{Transport: fn},
		"https://intel.example.net/v2/domain/report/",
		"domain",
		time.Second)
}

func TestClient_Lookup_PassesKeyThroughQueryParam(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "intel.example.net", r.URL.Host)
		require.Equal(t, "/v2/domain/report/", r.URL.Path)
		require.Equal(t, "example.com", r.URL.Query().Get("domain"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"subdomains":["a.example.com"]}`)),
		}, nil
	})

	payload, err := c.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.JSONEq(t, `{"subdomains":["a.example.com"]}`, string(payload))
}

func TestClient_Lookup_Non2xxIsUnavailable(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream broken")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Lookup_TransportErrorIsUnavailable(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	_, err := c.Lookup(context.Background(), "example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Lookup_RejectsNonJSONBody(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html>definitely not json</html>")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "example.com")
	require.Error(t, err)
}
