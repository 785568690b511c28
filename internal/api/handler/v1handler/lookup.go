package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"urlintel/pkg/domain"
	"urlintel/pkg/logger"
	"urlintel/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// noValidQuery is the exact error body returned when the url query parameter
// is missing.
const noValidQuery = "No valid query"

// Lookup handles GET /?url=<target>. A missing url parameter is rejected
// before the aggregator runs; a malformed url yields a structured 400. Every
// response carries Content-Type: application/json.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")

	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, noValidQuery)

		return
	}

	report, err := h.deps.Lookuper.Aggregate(ctx, raw)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Debug(ctx, "rejected malformed url", zap.String("url", raw), zap.Error(err))
			writeError(w, http.StatusBadRequest, "invalid url")

			return
		}

		logger.Error(ctx, "aggregation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	body, err := EncodeReport(report)
	if err != nil {
		logger.Error(ctx, "could not encode report", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	_, _ = w.Write(body)
}

// EncodeReport serializes a report into the v1 wire format: echoed
// protocol/host/pathname, one field per collection holding the matched record
// or null, the subdomains payload or null, and reverseDns only when the
// lookup applied to the target. Collection names are dynamic keys, and
// enrichment payloads pass through byte for byte, hence the manual encoder.
func EncodeReport(report *domain.Report) ([]byte, error) {
	e := &jx.Encoder{}
	e.ObjStart()

	e.FieldStart("protocol")
	e.Str(report.Target.Scheme)
	e.FieldStart("host")
	e.Str(report.Target.Host)
	e.FieldStart("pathname")
	e.Str(report.Target.Path)

	// NO_RECORD and FAILED both serialize as null: the wire format does not
	// distinguish them, the aggregator's logs and metrics do
	for i := range report.Matches {
		m := &report.Matches[i]
		e.FieldStart(m.Collection)
		if m.Outcome == domain.OutcomeMatched && m.Record != nil {
			b, err := json.Marshal(m.Record)
			if err != nil {
				return nil, err
			}
			e.Raw(b)
		} else {
			e.Null()
		}
	}

	e.FieldStart("subdomains")
	if len(report.Subdomains) > 0 {
		e.Raw(jx.Raw(report.Subdomains))
	} else {
		e.Null()
	}

	if report.ReverseDNSApplicable {
		e.FieldStart("reverseDns")
		if len(report.ReverseDNS) > 0 {
			e.Raw(jx.Raw(report.ReverseDNS))
		} else {
			e.Null()
		}
	}

	e.ObjEnd()

	return e.Bytes(), nil
}
