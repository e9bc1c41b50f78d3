package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"itinerary-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestIDHeader carries the request id in and out of the service
const RequestIDHeader = "X-Request-ID"

// RouteRegistrar mounts a group of endpoints
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// HTTPRouter assembles the service's HTTP handlers
type HTTPRouter struct {
	mux    chi.Router
	checks map[string]HealthCheck
	logger logger.Logger
}

// NewHTTPRouter creates a new router with the standard middleware, /health and /metrics
func NewHTTPRouter(logger logger.Logger, gatherer prometheus.Gatherer, requestTimeout time.Duration) *HTTPRouter {
	r := &HTTPRouter{
		mux:    chi.NewRouter(),
		checks: make(map[string]HealthCheck),
		logger: logger,
	}

	r.mux.Use(requestID)
	r.mux.Use(middleware.RealIP)
	r.mux.Use(r.requestLogger)
	r.mux.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.mux.Use(middleware.Timeout(requestTimeout))
	}

	r.mux.Get("/health", r.handleHealth)
	r.mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// Register mounts the registrar's endpoints
func (r *HTTPRouter) Register(registrar RouteRegistrar) {
	registrar.RegisterRoutes(r.mux)
	r.logger.Info("Registered routes", "registrar", fmt.Sprintf("%T", registrar))
}

// AddHealthCheck adds a named dependency check to /health
func (r *HTTPRouter) AddHealthCheck(name string, check HealthCheck) {
	r.checks[name] = check
}

// ServeHTTP implements http.Handler
func (r *HTTPRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *HTTPRouter) handleHealth(w http.ResponseWriter, req *http.Request) {
	status := http.StatusOK
	body := map[string]string{"status": "ok"}

	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.checks[name](req.Context()); err != nil {
			r.logger.Warn("Health check failed", "check", name, "error", err)
			body[name] = "unavailable"
			body["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		body[name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (r *HTTPRouter) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		r.logger.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"durationMs", time.Since(started).Milliseconds(),
			"requestId", ww.Header().Get(RequestIDHeader))
	})
}

// requestID propagates the caller's request id or assigns a new one
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(req.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
