package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/sitepdf"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRequestBytes bounds the size of a scrape request body.
const maxRequestBytes = 1 << 20

// ScrapeRequest is the body of POST /api/scrape.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse is the success body of POST /api/scrape. Content holds the
// block texts joined by blank lines.
type ScrapeResponse struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Links   []string `json:"links"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes a Scraper as the extraction service.
type Server struct {
	router  chi.Router
	scraper sitepdf.Scraper
	logger  *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes the gatherer's metrics on GET /metrics.
func WithMetrics(g prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}
}

// NewServer constructs a Server with middleware and routes.
func NewServer(scraper sitepdf.Scraper, opts ...ServerOption) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		scraper: scraper,
		logger:  slog.Default(),
	}

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoverMiddleware)

	s.router.Get("/healthz", s.healthz)
	s.router.Post("/api/scrape", s.scrape)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) scrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	result, err := s.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		s.logger.Warn("scrape failed", "url", req.URL, "error", err)
		writeError(w, statusFromError(err), sitepdf.ErrorMessage(err))
		return
	}

	links := result.Links
	if links == nil {
		links = []string{}
	}

	writeJSON(w, http.StatusOK, ScrapeResponse{
		Title:   result.Title,
		Content: sitepdf.JoinBlocks(result.Blocks),
		Links:   links,
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		s.logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "error", rec)
				writeError(w, http.StatusInternalServerError, "Internal error.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusFromError maps application error codes to HTTP statuses.
func statusFromError(err error) int {
	switch sitepdf.ErrorCode(err) {
	case sitepdf.EINVALID:
		return http.StatusBadRequest
	case sitepdf.ENOTFOUND:
		return http.StatusUnprocessableEntity
	case sitepdf.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorFromStatus is the inverse of statusFromError, used by Client.
// A 500 maps to EUNAVAILABLE: services speaking the original contract report
// failed page fetches as 500, and the crawler must see those as fetch
// failures.
func errorFromStatus(status int, message string) error {
	code := sitepdf.EINTERNAL
	switch status {
	case http.StatusBadRequest:
		code = sitepdf.EINVALID
	case http.StatusUnprocessableEntity:
		code = sitepdf.ENOTFOUND
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		code = sitepdf.EUNAVAILABLE
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return sitepdf.Errorf(code, "%s", message)
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
