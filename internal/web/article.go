package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hjs-ah/portfolio/internal/domain"
)

func ListArticles(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, h.service.ListArticles(r.Context()))
	}
}

func NewArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, h.service.NewArticle())
	}
}

func EditArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modal, ok := h.service.EditArticle(r.Context(), chi.URLParam(r, "id"))
		if !ok {
			render(w, http.StatusNotFound, map[string]string{"error": "article not found"})
			return
		}
		render(w, http.StatusOK, modal)
	}
}

func SaveArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		list, err := h.service.SaveArticle(r.Context(), domain.Article{
			ID:          r.Form.Get("id"),
			Title:       r.Form.Get("title"),
			Description: r.Form.Get("description"),
			URL:         r.Form.Get("url"),
			Date:        r.Form.Get("date"),
		})
		if err != nil {
			renderAlert(w, err)
			return
		}
		render(w, http.StatusOK, list)
	}
}

func DeleteArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.DeleteArticle(r.Context(), chi.URLParam(r, "id"), confirmed(r))
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

// confirmed reports whether the owner accepted the confirmation dialog of a deletion.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
