// Package api configures and exposes the HTTP server: the lookup route,
// metrics, docs, profiling and the related middleware.
package api

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"time"
	"urlintel/internal/api/handler/v1handler"
	"urlintel/internal/config"
	"urlintel/pkg/controller"
	"urlintel/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.uber.org/zap/exp/zapslog"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. Zero durations fall back
// to the net/http defaults where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps the HTTP section of the application config to server Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the collaborators the server routes to.
type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server:
//   - GET / with the lookup handler
//   - Prometheus metrics at MetricsPath
//   - the embedded OpenAPI v1 spec plus a Swagger playground
//   - pprof endpoints for profiling
//
// The router is wrapped with CORS and access-log middleware, and every
// request is bounded by RequestTimeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	h := v1handler.New(deps.Deps)

	r := chi.NewRouter()

	// the lookup endpoint itself; retrieval only, so nothing but GET is routed
	r.Get("/", h.Lookup)

	// prometheus metrics
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file and swagger playground
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/docs/*", v5emb.New(
		"URL Reputation Lookup",
		"/specs/v1.yaml",
		"/docs/",
	))

	// pprof
	r.Handle("/debug/pprof/*", controller.PprofMux())

	// cors, then access logging outermost
	handler := controller.WithCORS(r)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog: slog.NewLogLogger(
			zapslog.NewHandler(logger.Get(context.Background()).Core()),
			slog.LevelError),
	}, nil
}
