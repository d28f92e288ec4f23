package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/rs/zerolog/log"
)

func ListCreations(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, h.service.ListCreations(r.Context()))
	}
}

func ListBooks(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, h.service.ListBooks(r.Context()))
	}
}

func SaveCreation(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		file, err := readUpload(r)
		if err != nil {
			log.Error().Err(err).Msg("failed to read uploaded file")
			http.Error(w, "failed to read file", http.StatusBadRequest)
			return
		}

		list, err := h.service.SaveCreation(r.Context(), service.CreationForm{
			Title: r.Form.Get("title"),
			File:  file,
		})
		if err != nil {
			renderAlert(w, err)
			return
		}
		render(w, http.StatusOK, list)
	}
}

func SaveBook(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		file, err := readUpload(r)
		if err != nil {
			log.Error().Err(err).Msg("failed to read uploaded file")
			http.Error(w, "failed to read file", http.StatusBadRequest)
			return
		}

		list, err := h.service.SaveBook(r.Context(), service.BookForm{
			Title:     r.Form.Get("title"),
			Author:    r.Form.Get("author"),
			AmazonURL: r.Form.Get("amazonUrl"),
			File:      file,
		})
		if err != nil {
			renderAlert(w, err)
			return
		}
		render(w, http.StatusOK, list)
	}
}

func DeleteCreation(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.DeleteCreation(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("url"), confirmed(r))
		if err != nil {
			renderAlert(w, err)
			return
		}
		if list == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		render(w, http.StatusOK, list)
	}
}

func DeleteBook(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.DeleteBook(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("url"), confirmed(r))
		if err != nil {
			renderAlert(w, err)
			return
		}
		if list == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		render(w, http.StatusOK, list)
	}
}

// Preview returns the picked image as a data URL, for display before it is saved.
func Preview(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		file, err := readUpload(r)
		if err != nil {
			http.Error(w, "failed to read file", http.StatusBadRequest)
			return
		}

		preview, err := h.service.Preview(file)
		if err != nil {
			renderAlert(w, err)
			return
		}
		render(w, http.StatusOK, preview)
	}
}
