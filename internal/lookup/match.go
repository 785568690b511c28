package lookup

import (
	"context"
	"urlintel/pkg/domain"
	"urlintel/pkg/logger"

	"go.uber.org/zap"
)

// matchCollection applies the two-stage matching policy for one collection.
//
// Stage one queries by hostname alone. A miss yields NO_RECORD; a hit with
// includesPath unset is conclusive. A hit with includesPath set means the
// collection tracks maliciousness per path (one compromised path on an
// otherwise benign host), so a second query by hostname AND path decides the
// outcome; when that query misses, the result is NO_RECORD even though a
// hostname-level record exists. The second query is mandatory, never an
// optimization to skip.
//
// Store errors degrade to a FAILED outcome carrying the collection name so
// the aggregator can report partial results instead of failing the request.
func (l *lookup) matchCollection(ctx context.Context,
	collection string, target domain.TargetURL) domain.CollectionMatch {
	rec, err := l.storage.RecordByHostname(ctx, collection, target.Hostname)
	if err != nil {
		logger.Warn(ctx, "reputation lookup failed",
			zap.String("collection", collection), zap.Error(err))

		return domain.CollectionMatch{Collection: collection, Outcome: domain.OutcomeFailed}
	}
	if rec == nil {
		return domain.CollectionMatch{Collection: collection, Outcome: domain.OutcomeNoRecord}
	}
	if !rec.IncludesPath {
		return domain.CollectionMatch{Collection: collection, Outcome: domain.OutcomeMatched, Record: rec}
	}

	rec, err = l.storage.RecordByHostnameAndPath(ctx, collection, target.Hostname, target.Path)
	if err != nil {
		logger.Warn(ctx, "reputation path lookup failed",
			zap.String("collection", collection), zap.Error(err))

		return domain.CollectionMatch{Collection: collection, Outcome: domain.OutcomeFailed}
	}
	if rec == nil {
		return domain.CollectionMatch{Collection: collection, Outcome: domain.OutcomeNoRecord}
	}

	return domain.CollectionMatch{Collection: collection, Outcome: domain.OutcomeMatched, Record: rec}
}
