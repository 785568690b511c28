package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"urlintel/internal/api"
	"urlintel/internal/api/handler/v1handler"
	"urlintel/internal/config"
	"urlintel/internal/lookup"
	"urlintel/pkg/enrich/webapi"
	"urlintel/pkg/logger"
	"urlintel/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// setupMetrics wires the OpenTelemetry meter provider into the default
// Prometheus registry and returns the lookup instruments.
func setupMetrics(ctx context.Context) *metrics.Lookup {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	lm, err := metrics.NewLookup(mp.Meter("urlintel/lookup"))
	if err != nil {
		logger.Fatal(ctx, "could not create lookup metrics", zap.Error(err))
	}

	return lm
}

// setupServer starts the HTTP server in the background and returns a function
// that shuts it down gracefully.
func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the lookup API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			httpClient := &http.Client{}
			subdomains := webapi.New(httpClient,
				cfg.Lookup.SubdomainsURL,
				cfg.Lookup.SubdomainsParam,
				cfg.Lookup.EnrichmentTimeout)
			reverseDNS := webapi.New(httpClient,
				cfg.Lookup.ReverseDNSURL,
				cfg.Lookup.ReverseDNSParam,
				cfg.Lookup.EnrichmentTimeout)

			lookuper := lookup.New(strg, subdomains, reverseDNS,
				setupMetrics(ctx), lookup.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Lookuper: lookuper},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
