package api

import (
	"net/http"

	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/dgallion1/bmcanvas/internal/view"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sections := s.sectionsOrEmpty()
	mode := view.ParseMode(r.URL.Query().Get("view"))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.Dashboard(w, sections, mode, s.source.Dir()); err != nil {
		s.log.Error("render dashboard", "error", err)
		jsonError(w, "failed to render dashboard", http.StatusInternalServerError)
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	sections := s.sectionsOrEmpty()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.Print(w, sections, s.source.Dir()); err != nil {
		s.log.Error("render print view", "error", err)
		jsonError(w, "failed to render print view", http.StatusInternalServerError)
	}
}

// sectionsOrEmpty degrades a failed read to the empty canvas.
func (s *Server) sectionsOrEmpty() []section.Section {
	sections, err := s.load()
	if err != nil {
		s.log.Error("load canvas sections", "dir", s.source.Dir(), "error", err)
		return []section.Section{}
	}
	return sections
}
