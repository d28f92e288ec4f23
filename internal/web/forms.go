package web

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/hjs-ah/portfolio/internal/domain"
)

const (
	MaxMemory = 64 * 1024
	// MaxUpload bounds the size of a request carrying an image.
	MaxUpload = 16 << 20
)

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUpload)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(MaxMemory)
	}
	return r.ParseForm()
}

// readUpload returns the file sent in the "file" field, or nil if there is none.
func readUpload(r *http.Request) (*domain.Upload, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	return &domain.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}
