package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"path"
	"strings"
)

var (
	ErrNotDir      = errors.New("given root is not a directory")
	ErrInternal    = errors.New("internal error")
	ErrCreate      = errors.New("failed to create file")
	ErrNotExist    = errors.New("file does not exist")
	ErrInvalidPath = errors.New("invalid path")
	ErrForeignURL  = errors.New("url does not belong to this storage")
)

// Storage keeps blobs under slash separated paths and hands out durable URLs to retrieve them.
//
//go:generate mockgen -destination=../mocks/storage.go -package=mocks github.com/hjs-ah/portfolio/internal/storage Storage
type Storage interface {
	// Upload writes content at path, replacing any blob already stored there.
	Upload(ctx context.Context, path string, content io.Reader, contentType string) error
	// URL returns the retrieval URL of the blob at path; the URL can be used directly as an image source.
	URL(ctx context.Context, path string) (string, error)
	// DeleteByURL resolves a URL returned by URL back to its blob and deletes it. It fails with ErrNotExist
	// if the URL does not resolve to an existing blob.
	DeleteByURL(ctx context.Context, url string) error
}

// CleanPath normalizes a blob path, rejecting absolute paths and paths escaping the storage root.
func CleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

// JoinURL appends the escaped segments of the blob path p to base.
func JoinURL(base, p string) (string, error) {
	cleaned, err := CleanPath(p)
	if err != nil {
		return "", err
	}

	segments := strings.Split(cleaned, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.Join(segments, "/"), nil
}

// PathFromURL is the inverse of JoinURL. It fails with ErrForeignURL if u does not start with base.
func PathFromURL(base, u string) (string, error) {
	rest, ok := strings.CutPrefix(u, strings.TrimSuffix(base, "/")+"/")
	if !ok {
		return "", ErrForeignURL
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	p, err := url.PathUnescape(rest)
	if err != nil {
		return "", ErrInvalidPath
	}
	return CleanPath(p)
}

// ContentType guesses an image's media type from its file name, for backends that need one on upload.
func ContentType(name string) string {
	s := strings.ToLower(name)
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
