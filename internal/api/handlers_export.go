package api

import (
	"bytes"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/bmcanvas/internal/export"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	exp, err := export.ForFormat(format, s.exports)
	if errors.Is(err, export.ErrUnsupportedFormat) {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}

	sections, err := s.load()
	if err != nil {
		s.log.Error("load canvas sections", "dir", s.source.Dir(), "error", err)
		s.metrics.ObserveExport(format, 0, 0, err)
		jsonError(w, loadFailedMsg, http.StatusInternalServerError)
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	err = exp.Export(&buf, sections)
	s.metrics.ObserveExport(format, buf.Len(), time.Since(start), err)
	if err != nil {
		s.log.Error("export failed", "format", format, "sections", len(sections), "error", err)
		jsonError(w, "Failed to generate "+format+" export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", exp.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if r.URL.Query().Get("inline") != "1" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": exp.Filename()}))
	}
	w.Write(buf.Bytes())
}
