package lookup

import (
	"context"
	"sync"
	"time"
	"urlintel/internal/config"
	"urlintel/pkg/domain"
	"urlintel/pkg/enrich"
	"urlintel/pkg/logger"
	"urlintel/pkg/metrics"
	"urlintel/pkg/storage"

	"go.uber.org/zap"
)

// Options configure which collections are matched and how long enrichment
// calls may take.
type Options struct {
	// Collections are the reputation collection names to match, in the order
	// their fields appear in the response.
	Collections []string
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Collections: cfg.Lookup.Collections,
	}
}

// lookup is the concrete Lookuper. It fans out to the record store and the
// enrichment sources and joins the results into one report.
type lookup struct {
	options Options
	// storage is the shared, read-only record store handle.
	storage storage.ReputationStorage
	// subdomains enumerates known subdomains of a hostname.
	subdomains enrich.Source
	// reverseDNS resolves hostnames seen on an IPv4 address.
	reverseDNS enrich.Source
	// metrics records match outcomes and branch latency; may be nil.
	metrics *metrics.Lookup
}

// Aggregate implements the Lookuper contract. The reputation match per
// collection and the enrichment calls are mutually independent, so they run
// as a concurrent fan-out; the WaitGroup is the join barrier. Every branch
// owns its result slot and is individually allowed to fail, which makes the
// join per-branch failure isolated rather than all-or-nothing. Only a
// malformed input URL fails the whole request, and it does so before any
// branch starts.
func (l *lookup) Aggregate(ctx context.Context, rawURL string) (*domain.Report, error) {
	target, err := Normalize(rawURL)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Target:  target,
		Matches: make([]domain.CollectionMatch, len(l.options.Collections)),
	}

	var wg sync.WaitGroup

	for i, name := range l.options.Collections {
		wg.Add(1)
		go func(slot int, collection string) {
			defer wg.Done()

			start := time.Now()
			m := l.matchCollection(ctx, collection, target)
			report.Matches[slot] = m

			l.metrics.ObserveMatch(ctx, collection, string(m.Outcome))
			l.metrics.ObserveDuration(ctx, "collection:"+collection, time.Since(start))
		}(i, name)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		start := time.Now()
		payload, err := l.subdomains.Lookup(ctx, target.Hostname)
		if err != nil {
			logger.Warn(ctx, "subdomain enrichment failed",
				zap.String("hostname", target.Hostname), zap.Error(err))
		} else {
			report.Subdomains = payload
		}
		l.metrics.ObserveDuration(ctx, "subdomains", time.Since(start))
	}()

	// reverse DNS only applies to bare IPv4 hosts; for anything else it is
	// not attempted and the field is omitted from the response
	if IsIPv4(target.Hostname) {
		report.ReverseDNSApplicable = true

		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			payload, err := l.reverseDNS.Lookup(ctx, target.Hostname)
			if err != nil {
				logger.Warn(ctx, "reverse dns enrichment failed",
					zap.String("address", target.Hostname), zap.Error(err))
			} else {
				report.ReverseDNS = payload
			}
			l.metrics.ObserveDuration(ctx, "reverse_dns", time.Since(start))
		}()
	}

	wg.Wait()

	return report, nil
}

// New creates a Lookuper backed by the given record store and enrichment
// sources. m may be nil to disable metrics.
func New(strg storage.ReputationStorage,
	subdomains, reverseDNS enrich.Source,
	m *metrics.Lookup,
	options Options) Lookuper {
	return &lookup{
		options:    options,
		storage:    strg,
		subdomains: subdomains,
		reverseDNS: reverseDNS,
		metrics:    m,
	}
}
