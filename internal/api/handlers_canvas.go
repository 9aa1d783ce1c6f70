package api

import (
	"encoding/json"
	"net/http"
)

const loadFailedMsg = "Failed to load canvas sections"

func (s *Server) handleCanvas(w http.ResponseWriter, r *http.Request) {
	sections, err := s.load()
	if err != nil {
		s.log.Error("load canvas sections", "dir", s.source.Dir(), "error", err)
		jsonError(w, loadFailedMsg, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sections); err != nil {
		s.log.Error("encode canvas sections", "sections", len(sections), "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
