package domain

import (
	"encoding/json"
	"time"
)

// ReputationRecord is a single row of a reputation collection: a known-bad
// hostname, optionally narrowed down to a specific path. Records are owned by
// the record store and are read-only from this service's point of view.
type ReputationRecord struct {
	// Collection is the name of the collection the record belongs to
	// (e.g. "phishtank"). It is implied by the response field the record
	// appears under and is therefore not serialized.
	Collection string `json:"-"`

	// Hostname is the matched host, without a port.
	Hostname string `json:"hostname"`
	// Pathname is the malicious path on the host. Only meaningful when
	// IncludesPath is true.
	Pathname string `json:"pathname,omitempty"`
	// IncludesPath reports whether the collection tracks maliciousness per
	// path. When true, a hostname match alone is never conclusive and the
	// matcher must also compare the path.
	IncludesPath bool `json:"includesPath"`

	// Details carries source-specific metadata. It is opaque to the matcher
	// and passed through to the response unmodified.
	Details json.RawMessage `json:"details,omitempty"`

	// CreatedAt is when the record was imported into the store.
	CreatedAt time.Time `json:"-"`
}
