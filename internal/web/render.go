package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/rs/zerolog/log"
)

func render(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// GetCode maps an error returned by the services to an HTTP status code.
func GetCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound), errors.Is(err, storage.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// renderAlert writes the message of an alert the console must show and acknowledge.
func renderAlert(w http.ResponseWriter, err error) {
	msg := err.Error()
	var alert *service.Alert
	if errors.As(err, &alert) {
		msg = alert.Message
	}
	render(w, GetCode(err), map[string]string{"alert": msg})
}
