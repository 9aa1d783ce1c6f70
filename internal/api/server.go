package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/bmcanvas/internal/export"
	"github.com/dgallion1/bmcanvas/internal/metrics"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/dgallion1/bmcanvas/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SectionSource reads the current sections. *section.Loader satisfies it.
type SectionSource interface {
	LoadE() ([]section.Section, error)
	Dir() string
}

// Server is the HTTP server for the canvas dashboard.
type Server struct {
	router  chi.Router
	source  SectionSource
	exports export.Options
	views   *view.Renderer
	metrics *metrics.Recorder
	log     *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(src SectionSource, exports export.Options, views *view.Renderer, rec *metrics.Recorder, log *slog.Logger) *Server {
	if rec == nil {
		rec = metrics.NewRecorder(nil)
	}
	s := &Server{
		source:  src,
		exports: exports,
		views:   views,
		metrics: rec,
		log:     log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Get("/", s.handleDashboard)
	r.Get("/print", s.handlePrint)

	r.Get("/api/canvas", s.handleCanvas)
	r.Get("/export/{format}", s.handleExport)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// load reads the sections and records the outcome.
func (s *Server) load() ([]section.Section, error) {
	sections, err := s.source.LoadE()
	s.metrics.ObserveLoad(len(sections), err)
	return sections, err
}
