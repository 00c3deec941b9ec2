package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hammerlot/auctiondex/internal/domain"
	domauc "github.com/hammerlot/auctiondex/internal/domain/auction"
	"github.com/hammerlot/auctiondex/internal/domain/query"
	"github.com/hammerlot/auctiondex/internal/metrics"
	auctionuc "github.com/hammerlot/auctiondex/internal/usecase/auction"
	healthuc "github.com/hammerlot/auctiondex/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the auction API over chi.
type Server struct {
	auctions      *auctionuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	limits        query.Limits
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	auctions *auctionuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
	limits query.Limits,
) *Server {
	s := &Server{
		auctions: auctions,
		health:   health,
		logger:   logger,
		limits:   limits,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrMissingQuery, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
	}
	return s
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Route("/api/v1/auctions", func(r chi.Router) {
		r.Get("/", s.ListAuctions)
		r.Get("/search", s.SearchAuctions)
		r.Get("/{id}", s.GetAuction)
		r.Get("/{id}/similar", s.SimilarAuctions)
	})
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)
}

// ListAuctions handles GET /api/v1/auctions.
func (s *Server) ListAuctions(w http.ResponseWriter, r *http.Request) {
	f, err := s.parseFilter(r)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("list", err, 0)
		return
	}

	auctions, err := s.auctions.List(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("list", err, 0)
		return
	}

	s.observe("list", nil, len(auctions))
	writeList(w, auctions)
}

// SearchAuctions handles GET /api/v1/auctions/search.
func (s *Server) SearchAuctions(w http.ResponseWriter, r *http.Request) {
	f, err := s.parseFilter(r)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("search", err, 0)
		return
	}

	term := r.URL.Query().Get("q")
	auctions, err := s.auctions.Search(r.Context(), term, f)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("search", err, 0)
		return
	}

	s.observe("search", nil, len(auctions))
	writeList(w, auctions)
}

// GetAuction handles GET /api/v1/auctions/{id}.
func (s *Server) GetAuction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := s.auctions.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("get", err, 0)
		return
	}

	s.observe("get", nil, 1)
	writeJSON(w, http.StatusOK, itemResponse{Success: true, Data: auctionToResponse(a)})
}

// SimilarAuctions handles GET /api/v1/auctions/{id}/similar.
func (s *Server) SimilarAuctions(w http.ResponseWriter, r *http.Request) {
	f, err := s.parseFilter(r)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("similar", err, 0)
		return
	}

	id := chi.URLParam(r, "id")
	auctions, err := s.auctions.Similar(r.Context(), id, f)
	if err != nil {
		s.handleDomainError(w, err)
		s.observe("similar", err, 0)
		return
	}

	s.observe("similar", nil, len(auctions))
	writeList(w, auctions)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) parseFilter(r *http.Request) (query.Filter, error) {
	q := r.URL.Query()
	return query.ParseFilter(q.Get("minPrice"), q.Get("maxPrice"), q.Get("limit"), s.limits)
}

func (s *Server) observe(kind string, err error, count int) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.SearchRequestsTotal.WithLabelValues(kind, status).Inc()
	if err == nil {
		metrics.SearchResultsReturned.WithLabelValues(kind).Observe(float64(count))
	}
}

func writeList(w http.ResponseWriter, auctions []domauc.Auction) {
	items := auctionsToResponse(auctions)
	writeJSON(w, http.StatusOK, listResponse{Success: true, Count: len(items), Data: items})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrMissingQuery,
		domain.ErrInvalidFilter,
		domain.ErrInvalidID,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
