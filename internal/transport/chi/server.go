// Package chi provides the HTTP transport for the search engine.
package chi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/openvocab/cuisearch/internal/domain"
	"github.com/openvocab/cuisearch/internal/domain/search/request"
	logpkg "github.com/openvocab/cuisearch/internal/logger"
	"github.com/openvocab/cuisearch/internal/metrics"
	healthuc "github.com/openvocab/cuisearch/internal/usecase/health"
	searchuc "github.com/openvocab/cuisearch/internal/usecase/search"
)

// Server exposes the fusion engine over HTTP. Handlers log through the
// per-request logger placed in the context by the logging middleware.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service) *Server {
	return &Server{search: search, health: health}
}

// Routes mounts the API on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/search", s.SearchConcepts)
	r.Get("/health", s.Health)
}

// SearchConcepts handles GET /api/search.
func (s *Server) SearchConcepts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	pageNum := intParam(r, "page", 1)
	size := intParam(r, "size", 0)
	fuzzy := r.URL.Query().Get("fuzzy") == "true"

	req, err := request.New(q, pageNum, size, fuzzy)
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeInvalid, 0, false)
		writeError(w, http.StatusBadRequest, "Missing query parameter ?q=", err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleSearchError(w, r, err)
		return
	}

	resp := pageToResponse(&res)
	metrics.RecordSearch(metrics.OutcomeOK, resp.Total, hasExact(resp.Results))
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToResponse(report))
}

func (s *Server) handleSearchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidQuery) {
		metrics.RecordSearch(metrics.OutcomeInvalid, 0, false)
		writeError(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	// Retrieval failures abort the whole request: no partial results.
	logpkg.FromContext(r.Context()).Error("search failed", zap.Error(err))
	metrics.RecordSearch(metrics.OutcomeRetrieval, 0, false)
	writeError(w, http.StatusInternalServerError, "Search failed", err.Error())
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
