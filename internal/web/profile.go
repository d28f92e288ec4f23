package web

import (
	"net/http"

	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/rs/zerolog/log"
)

func GetProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, h.service.LoadProfile(r.Context()))
	}
}

func SaveProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(w, r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		profile := domain.Profile{
			Name:            r.Form.Get("name"),
			Title:           r.Form.Get("title"),
			Location:        r.Form.Get("location"),
			Email:           r.Form.Get("email"),
			ProfileImageURL: r.Form.Get("profileImageUrl"),
			SocialLinks: domain.SocialLinks{
				Medium:   r.Form.Get("medium"),
				LinkedIn: r.Form.Get("linkedin"),
				Behance:  r.Form.Get("behance"),
			},
		}

		notice, err := h.service.SaveProfile(r.Context(), profile)
		if err != nil {
			renderAlert(w, err)
			return
		}
		render(w, http.StatusOK, map[string]any{"notice": notice})
	}
}

func UploadProfileImage(h *Handler) http.HandlerFunc {
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

		img, err := h.service.UploadProfileImage(r.Context(), file)
		if err != nil {
			renderAlert(w, err)
			return
		}
		render(w, http.StatusOK, img)
	}
}
