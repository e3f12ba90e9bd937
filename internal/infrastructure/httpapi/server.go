package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"MediaScorer/internal/domain"
	"MediaScorer/internal/ports"
)

// AnalyzerService is the slice of the use-case layer the API needs.
type AnalyzerService interface {
	Analyze(ctx context.Context, article domain.Article) (domain.CompositeReport, error)
	AnalyzeURL(ctx context.Context, url string) (domain.Article, domain.CompositeReport, error)
}

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	service    AnalyzerService
	repository ports.ReportRepository
	logger     *slog.Logger
	router     *mux.Router
}

// NewServer wires routes; repository may be nil, which disables /api/reports.
func NewServer(service AnalyzerService, repository ports.ReportRepository, logger *slog.Logger) *Server {
	s := &Server{
		service:    service,
		repository: repository,
		logger:     logger,
		router:     mux.NewRouter(),
	}

	s.router.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost)
	s.router.HandleFunc("/api/reports", s.handleReports).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

type analyzeRequest struct {
	URL      string `json:"url"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

type analyzeResponse struct {
	Headline string                 `json:"headline"`
	Body     string                 `json:"body,omitempty"`
	URL      string                 `json:"url,omitempty"`
	Report   domain.CompositeReport `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze accepts either {"url": ...} to scrape-and-score, or
// {"headline": ..., "body": ...} to score supplied text directly. Exactly one
// of the two forms must be used.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	hasText := req.Headline != "" || req.Body != ""
	switch {
	case req.URL != "" && hasText:
		s.writeError(w, http.StatusBadRequest, "provide either url or headline/body, not both")
		return
	case req.URL == "" && !hasText:
		s.writeError(w, http.StatusBadRequest, "provide a url or headline/body text")
		return
	}

	if req.URL != "" {
		article, report, err := s.service.AnalyzeURL(r.Context(), req.URL)
		if err != nil {
			s.logWarn("analyze url failed", "url", req.URL, "error", err)
			s.writeError(w, http.StatusBadGateway, "could not fetch and analyze article")
			return
		}
		s.writeJSON(w, http.StatusOK, analyzeResponse{
			Headline: article.Headline,
			Body:     article.Body,
			URL:      article.URL,
			Report:   report,
		})
		return
	}

	article := domain.Article{Headline: req.Headline, Body: req.Body}
	report, err := s.service.Analyze(r.Context(), article)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logWarn("analyze failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.writeJSON(w, http.StatusOK, analyzeResponse{
		Headline: article.Headline,
		Body:     article.Body,
		Report:   report,
	})
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if s.repository == nil {
		s.writeError(w, http.StatusNotFound, "persistence is not configured")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 200 {
			s.writeError(w, http.StatusBadRequest, "limit must be in 1..200")
			return
		}
		limit = parsed
	}

	reports, err := s.repository.RecentReports(r.Context(), limit)
	if err != nil {
		s.logWarn("list reports failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not list reports")
		return
	}
	if reports == nil {
		reports = []domain.StoredReport{}
	}

	s.writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logWarn("write response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

func (s *Server) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
