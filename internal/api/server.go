// Package api exposes the HTTP interface for the logo service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/logofetch/logofetch/internal/bulk"
	"github.com/logofetch/logofetch/internal/logo"
	"github.com/logofetch/logofetch/internal/resolver"
)

// Resolver is the name-resolution surface the server consumes.
type Resolver interface {
	Resolve(ctx context.Context, input string) logo.ResolvedDomain
	Search(query string, opts resolver.SearchOptions) []resolver.RankedEntry
}

// LogoFetcher runs the source cascade for one resolved domain.
type LogoFetcher interface {
	FetchLogo(ctx context.Context, domain, company string, size logo.Size) logo.FetchResult
}

// BulkRunner fans out many resolve+fetch chains.
type BulkRunner interface {
	Run(ctx context.Context, names []string, size logo.Size) []bulk.ItemResult
}

// Server wires HTTP handlers to the resolver and fetch pipeline.
type Server struct {
	router   chi.Router
	resolver Resolver
	fetcher  LogoFetcher
	bulk     BulkRunner
	logger   *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(res Resolver, fetcher LogoFetcher, bulkRunner BulkRunner, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		resolver: res,
		fetcher:  fetcher,
		bulk:     bulkRunner,
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(timeoutMiddleware(120 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/resolve", s.resolve)
		r.Get("/search", s.search)
		r.Get("/logos/{name}", s.getLogo)
		r.Post("/logos/bulk", s.bulkLogos)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// The curated database is compiled in; readiness has no downstreams.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}
	writeJSON(w, http.StatusOK, s.resolver.Resolve(r.Context(), name))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}
	opts := resolver.SearchOptions{Category: r.URL.Query().Get("category")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		opts.Limit = limit
	}
	results := s.resolver.Search(query, opts)
	writeJSON(w, http.StatusOK, map[string]any{"results": results, "count": len(results)})
}

func (s *Server) getLogo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	size, ok := parseSize(r.URL.Query().Get("size"))
	if !ok {
		writeError(w, http.StatusBadRequest, "size must be one of small, medium, large")
		return
	}

	resolved := s.resolver.Resolve(r.Context(), name)
	result := s.fetcher.FetchLogo(r.Context(), resolved.Domain, resolved.Company, size)
	if !result.Success {
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":    result.Error,
			"resolved": resolved,
			"attempts": result.Attempts,
		})
		return
	}

	w.Header().Set("Content-Type", result.Logo.Info.MIMEType)
	w.Header().Set("X-Logo-Source", result.Logo.Source)
	w.Header().Set("X-Logo-Confidence", string(resolved.Confidence))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Logo.Data); err != nil {
		s.logger.Error("write logo response failed", zap.Error(err))
	}
}

type bulkRequest struct {
	Names []string `json:"names"`
	Size  string   `json:"size"`
}

func (s *Server) bulkLogos(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.Names) == 0 {
		writeError(w, http.StatusBadRequest, "at least one name required")
		return
	}
	size, ok := parseSize(req.Size)
	if !ok {
		writeError(w, http.StatusBadRequest, "size must be one of small, medium, large")
		return
	}
	results := s.bulk.Run(r.Context(), req.Names, size)
	succeeded := 0
	for _, item := range results {
		if item.Fetch.Success {
			succeeded++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":   results,
		"total":     len(results),
		"succeeded": succeeded,
	})
}

// parseSize maps the query value onto the size enum; empty means medium.
func parseSize(raw string) (logo.Size, bool) {
	switch logo.Size(raw) {
	case "":
		return logo.SizeMedium, true
	case logo.SizeSmall, logo.SizeMedium, logo.SizeLarge:
		return logo.Size(raw), true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("write JSON failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type requestIDKey struct{}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("panic", rec))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
