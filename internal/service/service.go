package service

import (
	"context"
	"errors"

	"github.com/hjs-ah/portfolio/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid")
)

// Service holds the content editors of the admin console.
//
//go:generate mockgen -destination=../mocks/service.go -package=mocks github.com/hjs-ah/portfolio/internal/service Service
type Service interface {
	Profiles
	Articles
	Creations
	Books
	// Preview renders an image picked by the owner as a data URL, without uploading it.
	Preview(file *domain.Upload) (Preview, error)
	// LoadAll reloads every editor. Read failures are logged and leave the corresponding section empty.
	LoadAll(ctx context.Context) Dashboard
	// Portfolio returns the content shown on the public site.
	Portfolio(ctx context.Context) (Portfolio, error)
}
