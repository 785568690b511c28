// Package storage defines the read-only record store interfaces the lookup
// pipeline relies on. The store holds one set of reputation records per named
// collection; this service never writes to it.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"urlintel/pkg/domain"
)

// ReputationStorage exposes the two record lookups the matcher needs. Both
// return (nil, nil) when no record exists; "no record" is a legitimate
// outcome, not an error.
type ReputationStorage interface {
	// RecordByHostname returns one record from the named collection whose
	// hostname equals the given hostname, or nil when none exists.
	RecordByHostname(ctx context.Context, collection, hostname string) (*domain.ReputationRecord, error)
	// RecordByHostnameAndPath returns one record from the named collection
	// matching both hostname and pathname, or nil when none exists. Used for
	// the second stage of the match when a record tracks path-specific
	// maliciousness.
	RecordByHostnameAndPath(ctx context.Context,
		collection, hostname, pathname string) (*domain.ReputationRecord, error)
}

// Storage is a long-lived record store handle. It is opened once at process
// start, shared read-only by all requests, and closed on shutdown.
type Storage interface {
	ReputationStorage

	// Close releases the underlying connection pool. After Close, the
	// instance must not be used.
	Close() error
}
