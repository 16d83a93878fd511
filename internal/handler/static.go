package handler

import (
	"net/http"
	"path/filepath"
)

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.serveStatic(w, r, "index.html", "text/html; charset=utf-8")
}

func (h *Handler) handleStyle(w http.ResponseWriter, r *http.Request) {
	h.serveStatic(w, r, "style.css", "text/css; charset=utf-8")
}

// serveStatic answers 404 when the asset is missing.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request, name, contentType string) {
	w.Header().Set("Content-Type", contentType)
	http.ServeFile(w, r, filepath.Join(h.staticDir, name))
}
