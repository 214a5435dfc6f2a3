package server

import (
	"net/http"

	"github.com/tecblu/savings-widget/translations"
)

// handleLiveness reports that the process is running.
func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReadiness verifies the translation bundle loaded for the default
// language. The service is stateless, so this is the only startup
// dependency that can be missing.
func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	if len(s.bundle.Strings(s.bundle.DefaultLanguage(), translations.Namespace)) == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
