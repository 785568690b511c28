// Package enrich defines the abstraction for best-effort third-party
// enrichment sources. A source answers a single key (hostname or IPv4
// address) with an arbitrary JSON payload that is passed through to the
// response unmodified; its failures never fail a request.
//
//go:generate mockgen -package mockenrich -source=interface.go -destination=mock/mockenrich.go *
package enrich

import (
	"context"
	"encoding/json"
)

// Source is a single enrichment endpoint keyed by a hostname or address.
type Source interface {
	// Lookup fetches the payload for key. The payload is opaque,
	// non-authoritative context about the host, not a verdict.
	Lookup(ctx context.Context, key string) (json.RawMessage, error)
}
