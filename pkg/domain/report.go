package domain

import "encoding/json"

// TargetURL is the normalized form of a submitted URL. It is immutable once
// constructed and lives only for the duration of a single request.
type TargetURL struct {
	// Scheme is the URL scheme ("http" when the input carried none).
	Scheme string
	// Host is the host part of the URL, possibly including a port.
	Host string
	// Hostname is Host without the port. Non-empty for any non-empty input
	// that normalized successfully.
	Hostname string
	// Path is the URL path, "/" when the input had none.
	Path string
}

// MatchOutcome is the three-way result of matching a URL against one
// reputation collection. Absence of a record is deliberately distinct from a
// failed lookup: "no record" may simply reflect an incomplete dataset and must
// never be read as "confirmed safe".
type MatchOutcome string

const (
	// OutcomeMatched means a record conclusively matched the URL.
	OutcomeMatched MatchOutcome = "MATCHED"
	// OutcomeNoRecord means the collection holds no record for the URL.
	OutcomeNoRecord MatchOutcome = "NO_RECORD"
	// OutcomeFailed means the store lookup for this collection errored. The
	// failure is local to the collection and never fails the whole request.
	OutcomeFailed MatchOutcome = "FAILED"
)

// CollectionMatch is the result of matching a URL against one named
// collection. Record is non-nil only when Outcome is OutcomeMatched.
type CollectionMatch struct {
	Collection string
	Outcome    MatchOutcome
	Record     *ReputationRecord
}

// Report is the aggregated answer for one submitted URL. It is built fresh
// per request and never persisted.
type Report struct {
	// Target echoes the normalized URL the report describes.
	Target TargetURL

	// Matches holds one entry per configured collection, in configuration
	// order.
	Matches []CollectionMatch

	// Subdomains is the opaque payload of the subdomain enumeration source,
	// nil when the call failed.
	Subdomains json.RawMessage
	// ReverseDNS is the opaque payload of the reverse DNS source. It is only
	// meaningful when ReverseDNSApplicable is true.
	ReverseDNS json.RawMessage
	// ReverseDNSApplicable reports whether the reverse DNS lookup applied to
	// this target, i.e. whether the hostname is an IPv4 literal. When false
	// the lookup was not attempted at all.
	ReverseDNSApplicable bool
}

// Match returns the match entry for the given collection name, or nil when
// the collection is not part of the report.
func (r *Report) Match(collection string) *CollectionMatch {
	for i := range r.Matches {
		if r.Matches[i].Collection == collection {
			return &r.Matches[i]
		}
	}

	return nil
}
