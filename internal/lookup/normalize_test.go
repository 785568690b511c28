package lookup_test

import (
	"testing"
	"urlintel/internal/lookup"
	"urlintel/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		scheme   string
		hostname string
		path     string
		ok       bool
	}{
		{
			name:     "full http url",
			in:       "http://example.com/login",
			scheme:   "http",
			hostname: "example.com",
			path:     "/login",
			ok:       true,
		},
		{
			name:     "https scheme preserved",
			in:       "https://example.com/",
			scheme:   "https",
			hostname: "example.com",
			path:     "/",
			ok:       true,
		},
		{
			name:     "missing scheme assumes http",
			in:       "example.com/login",
			scheme:   "http",
			hostname: "example.com",
			path:     "/login",
			ok:       true,
		},
		{
			name:     "empty path becomes root",
			in:       "http://example.com",
			scheme:   "http",
			hostname: "example.com",
			path:     "/",
			ok:       true,
		},
		{
			name:     "host is lowercased",
			in:       "http://EXAMPLE.Com/Path",
			scheme:   "http",
			hostname: "example.com",
			path:     "/Path",
			ok:       true,
		},
		{
			name:     "port is stripped from hostname",
			in:       "http://example.com:8080/x",
			scheme:   "http",
			hostname: "example.com",
			path:     "/x",
			ok:       true,
		},
		{
			name:     "trailing dot is dropped",
			in:       "http://example.com./",
			scheme:   "http",
			hostname: "example.com",
			path:     "/",
			ok:       true,
		},
		{
			name:     "bare ipv4 host",
			in:       "203.0.113.5",
			scheme:   "http",
			hostname: "203.0.113.5",
			path:     "/",
			ok:       true,
		},
		{
			name: "empty input fails",
			in:   "",
			ok:   false,
		},
		{
			name: "whitespace only fails",
			in:   "   ",
			ok:   false,
		},
		{
			name: "url with space fails even with assumed scheme",
			in:   "http://exa mple.com",
			ok:   false,
		},
		{
			name: "bare path fails",
			in:   "/nohost",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lookup.Normalize(tc.in)
			if !tc.ok {
				require.Error(t, err)
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.scheme, got.Scheme)
			require.Equal(t, tc.hostname, got.Hostname)
			require.Equal(t, tc.path, got.Path)
		})
	}
}

// For any input missing a scheme, the normalizer must produce the same
// hostname and path as if "http://" had been prepended.
func TestNormalize_SchemelessEqualsPrepended(t *testing.T) {
	inputs := []string{
		"example.com",
		"example.com/login",
		"sub.Example.COM/a/b?q=1",
		"203.0.113.5",
		"203.0.113.5/admin",
	}

	for _, in := range inputs {
		bare, err := lookup.Normalize(in)
		require.NoError(t, err, "input %q", in)

		prepended, err := lookup.Normalize("http://" + in)
		require.NoError(t, err, "input %q", in)

		require.Equal(t, prepended.Hostname, bare.Hostname, "input %q", in)
		require.Equal(t, prepended.Path, bare.Path, "input %q", in)
	}
}

func TestIsIPv4(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"203.0.113.5", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"example.com", false},
		{"2001:db8::1", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := lookup.IsIPv4(tc.host); got != tc.want {
			t.Fatalf("IsIPv4(%q) = %v, want %v", tc.host, got, tc.want)
		}
	}
}
