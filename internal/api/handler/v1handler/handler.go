// Package v1handler contains the HTTP boundary of the lookup API: query
// parameter validation, invocation of the aggregator and JSON serialization
// of the combined report.
package v1handler

import (
	"net/http"
	"urlintel/internal/lookup"

	"github.com/go-faster/jx"
)

// Deps are the collaborators the handlers need.
type Deps struct {
	// Lookuper aggregates reputation matches and enrichment for a URL.
	Lookuper lookup.Lookuper
}

// Handler serves the v1 lookup endpoint.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// writeError writes a structured JSON error payload. Clients never see raw
// error chains or stack traces, only the short message.
func writeError(w http.ResponseWriter, status int, msg string) {
	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
