package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/rs/zerolog/log"
)

// GetFile serves a blob of the filestore backend.
func GetFile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := chi.URLParam(r, "*")
		content, err := h.Files.Open(path)
		if err != nil {
			if errors.Is(err, storage.ErrNotExist) || errors.Is(err, storage.ErrInvalidPath) {
				http.NotFound(w, r)
				return
			}
			log.Error().Err(err).Str("path", path).Msg("failed to serve file")
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		contentType := storage.ContentType(path)
		if contentType == "application/octet-stream" {
			contentType = http.DetectContentType(content)
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(content)
	}
}

// Portfolio returns the content of the public site.
func Portfolio(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.service.Portfolio(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to load portfolio")
			render(w, http.StatusInternalServerError, map[string]string{"error": "failed to load portfolio"})
			return
		}
		render(w, http.StatusOK, p)
	}
}
