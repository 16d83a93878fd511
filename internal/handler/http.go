package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikhailRaia/link-shortener/internal/logger"
	"github.com/MikhailRaia/link-shortener/internal/middleware"
	"github.com/MikhailRaia/link-shortener/internal/model"
)

type LinkService interface {
	Shorten(ctx context.Context, targetURL, customCode string) (string, error)
	Resolve(ctx context.Context, code string) (string, bool, error)
	Links(ctx context.Context) (model.LinkMapping, error)
}

type Handler struct {
	linkService LinkService
	staticDir   string
}

func NewHandler(linkService LinkService, staticDir string) *Handler {
	return &Handler{
		linkService: linkService,
		staticDir:   staticDir,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(logger.RequestID)
	r.Use(logger.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipMiddleware)

	r.Get("/", h.handleIndex)
	r.Get("/style.css", h.handleStyle)
	r.Get("/links", h.handleLinks)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/{code}", h.handleRedirect)
	r.Post("/shorten", h.handleShorten)

	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleNotFound)

	return r
}

func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		h.handleNotFound(w, r)
		return
	}

	target, found, err := h.linkService.Resolve(r.Context(), code)
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("code", code).Msg("Failed to resolve short code")
		respondText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if !found {
		h.handleNotFound(w, r)
		return
	}

	// Targets are sent verbatim, schemeless ones included.
	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusFound)
}

func (h *Handler) handleLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.linkService.Links(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Msg("Failed to load links")
		respondText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	respondJSON(w, http.StatusOK, links)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
