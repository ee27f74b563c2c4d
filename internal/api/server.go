// Package api configures and exposes the HTTP server, routes, metrics and
// related middleware for the catalog service.
package api

import (
	"fmt"
	"net/http"
	"time"

	"catalog/internal/auth"
	"catalog/internal/config"
	"catalog/internal/service"
	"catalog/pkg/controller"
	"catalog/pkg/metrics"
	"catalog/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
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
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
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

// Deps are the collaborators the route handlers are built on.
type Deps struct {
	Catalogs service.Catalogs
	Products service.Products
	Extras   service.Extras
	Users    service.Users

	// Verifier validates bearer tokens on authenticated routes.
	Verifier *auth.Verifier
	// Sessions resolves token session ids to live sessions.
	Sessions storage.SessionStorage
}

// NewMux builds the route table without the outer server, which keeps
// handler tests independent of listener configuration.
func NewMux(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	catalogs := &catalogHandler{catalogs: deps.Catalogs}
	mux.HandleFunc("POST /v1/catalogs", catalogs.create)
	mux.HandleFunc("GET /v1/catalogs", catalogs.list)
	mux.HandleFunc("GET /v1/catalogs/{id}", catalogs.get)
	mux.HandleFunc("PATCH /v1/catalogs/{id}", catalogs.update)
	mux.HandleFunc("DELETE /v1/catalogs/{id}", catalogs.delete)

	products := &productHandler{products: deps.Products}
	mux.HandleFunc("POST /v1/catalogs/{catalogID}/products", products.create)
	mux.HandleFunc("GET /v1/catalogs/{catalogID}/products/{id}", products.get)
	mux.HandleFunc("PATCH /v1/catalogs/{catalogID}/products/{id}", products.update)
	mux.HandleFunc("DELETE /v1/catalogs/{catalogID}/products/{id}", products.delete)

	extras := &extraHandler{extras: deps.Extras}
	mux.HandleFunc("POST /v1/extras", extras.create)
	mux.HandleFunc("GET /v1/extras", extras.list)
	mux.HandleFunc("GET /v1/extras/{id}", extras.get)
	mux.HandleFunc("PATCH /v1/extras/{id}", extras.update)
	mux.HandleFunc("DELETE /v1/extras/{id}", extras.delete)

	users := &userHandler{users: deps.Users}
	mux.HandleFunc("POST /v1/users", users.register)
	mux.HandleFunc("POST /v1/sessions", users.login)
	mux.HandleFunc("GET /v1/users/verify-email", users.verifyEmail)
	mux.HandleFunc("POST /v1/sessions/refresh",
		withSession(deps.Verifier, deps.Sessions, users.refresh))
	mux.HandleFunc("DELETE /v1/sessions",
		withSession(deps.Verifier, deps.Sessions, users.logout))
	mux.HandleFunc("GET /v1/users/me",
		withSession(deps.Verifier, deps.Sessions, users.me))

	return mux
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - v1 API routes
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	hist, err := mp.Meter("catalog/api").Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("duration of handled HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	// v1 api
	mux.Handle("/v1/", withDuration(hist, NewMux(deps)))

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
