// Package lookup contains the one piece of this service with actual decision
// logic: URL normalization, the two-stage reputation match against each
// configured collection, the enrichment fan-out and the assembly of the
// combined report.
package lookup

import (
	"context"
	"urlintel/pkg/domain"
)

//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Lookuper interface {
	// Aggregate normalizes rawURL and gathers every configured reputation
	// match plus enrichment payloads into one report. It fails only when the
	// URL itself cannot be parsed; individual sub-lookup failures degrade to
	// absent fields.
	Aggregate(ctx context.Context, rawURL string) (*domain.Report, error)
}
