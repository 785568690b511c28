package lookup

import (
	"net/netip"
	"net/url"
	"strings"
	"urlintel/pkg/domain"
	"urlintel/pkg/serrors"

	"golang.org/x/net/idna"
)

// Normalize parses a raw input string into a TargetURL.
//
// Parsing is attempted strictly first; when the input carries no scheme (or
// the scheme-less parse yields no host), it is retried with "http://"
// prepended, so "example.com/login" and "http://example.com/login" normalize
// identically. If both attempts fail the input is unprocessable and no
// downstream lookup must run.
//
// Hostnames are lowercased, stripped of a trailing dot and IDNA-mapped to
// their ASCII (punycode) form so they line up with the keys the record store
// uses. Purely syntactic; no network or store access happens here.
func Normalize(raw string) (domain.TargetURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.TargetURL{}, serrors.With(serrors.ErrBadRequest, "empty url")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		// retry with an assumed scheme, but only for scheme-less input:
		// prepending to an already-schemed malformed URL would turn its
		// scheme into the hostname
		if strings.Contains(raw, "://") {
			return domain.TargetURL{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid url %q", raw)
		}
		u, err = url.Parse("http://" + raw)
		if err != nil || u.Host == "" {
			return domain.TargetURL{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid url %q", raw)
		}
	}

	hostname := strings.ToLower(u.Hostname())
	hostname = strings.TrimSuffix(hostname, ".")
	if mapped, idnaErr := idna.Lookup.ToASCII(hostname); idnaErr == nil {
		hostname = mapped
	}
	if hostname == "" {
		return domain.TargetURL{}, serrors.With(serrors.ErrBadRequest, "url %q has no host", raw)
	}

	p := u.Path
	if p == "" {
		p = "/"
	}

	return domain.TargetURL{
		Scheme:   strings.ToLower(u.Scheme),
		Host:     strings.ToLower(u.Host),
		Hostname: hostname,
		Path:     p,
	}, nil
}

// IsIPv4 reports whether host is a dotted-decimal IPv4 literal with four
// octets in range. IPv6 addresses (including 4-in-6 forms) do not qualify:
// the reverse DNS source only accepts plain IPv4.
func IsIPv4(host string) bool {
	addr, err := netip.ParseAddr(host)

	return err == nil && addr.Is4()
}
