package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/portfoliohub/hub-server/internal/http/response"
)

// handleServeUpload serves a stored journal photo. The filename is
// reduced to its base name so the route can never read outside the
// uploads directory.
func (s *Server) handleServeUpload(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if filename == "." || filename == string(filepath.Separator) {
		response.NotFound(w, "not found", s.logger)
		return
	}

	path := filepath.Join(s.uploadsDir, filename)
	if _, err := os.Stat(path); err != nil {
		response.NotFound(w, "not found", s.logger)
		return
	}

	http.ServeFile(w, r, path)
}

// handleStatic serves the portfolio shell. Real files under the web root
// are served as-is; every other path gets index.html so client-side
// routing works on a hard refresh.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.NotFound(w, "not found", s.logger)
		return
	}

	requested := filepath.Join(s.webRoot, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	index := filepath.Join(s.webRoot, "index.html")
	if _, err := os.Stat(index); err != nil {
		response.NotFound(w, "not found", s.logger)
		return
	}

	http.ServeFile(w, r, index)
}
