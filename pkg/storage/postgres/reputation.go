package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
	"urlintel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	recordsTable = "reputation_records"
)

// PgReputationRecord is the database shape of a reputation record. All
// collections share one table; the collection name is a column.
type PgReputationRecord struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Collection   string          `db:"collection"`
	Hostname     string          `db:"hostname"`
	Pathname     sql.NullString  `db:"pathname"`
	IncludesPath bool            `db:"includes_path"`
	Details      json.RawMessage `db:"details"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgReputationRecord) ToDomain() *domain.ReputationRecord {
	return &domain.ReputationRecord{
		Collection:   p.Collection,
		Hostname:     p.Hostname,
		Pathname:     p.Pathname.String,
		IncludesPath: p.IncludesPath,
		Details:      p.Details,
		CreatedAt:    p.CreatedAt,
	}
}

// RecordByHostname returns one record from the collection keyed by hostname
// alone, or nil when the collection has no record for the host.
func (p *PgSQL) RecordByHostname(ctx context.Context,
	collection, hostname string) (*domain.ReputationRecord, error) {
	var row PgReputationRecord
	found, err := p.Builder.From(recordsTable).
		Where(
			goqu.I("collection").Eq(collection),
			goqu.I("hostname").Eq(hostname),
		).
		// prefer a hostname-level record over path-granular ones when a
		// collection carries both shapes for the same host
		Order(goqu.I("includes_path").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch record by hostname: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// RecordByHostnameAndPath returns one record matching both hostname and
// pathname, or nil when none exists. This is the second stage of the match
// for path-granular collections.
func (p *PgSQL) RecordByHostnameAndPath(ctx context.Context,
	collection, hostname, pathname string) (*domain.ReputationRecord, error) {
	var row PgReputationRecord
	found, err := p.Builder.From(recordsTable).
		Where(
			goqu.I("collection").Eq(collection),
			goqu.I("hostname").Eq(hostname),
			goqu.I("pathname").Eq(pathname),
		).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch record by hostname and path: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
