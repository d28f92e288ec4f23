// Package gcs keeps blobs in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/hjs-ah/portfolio/internal/config"
	blob "github.com/hjs-ah/portfolio/internal/storage"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const publicHost = "https://storage.googleapis.com/"

type gcsStorage struct {
	client *storage.Client
	bucket string
	base   string
}

func New(ctx context.Context, cfg config.GCS) (blob.Storage, error) {
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &gcsStorage{
		client: client,
		bucket: cfg.Bucket,
		base:   baseURL(cfg),
	}, nil
}

func baseURL(cfg config.GCS) string {
	if cfg.BaseURL != "" {
		return strings.TrimSuffix(cfg.BaseURL, "/")
	}
	return publicHost + cfg.Bucket
}

func (s *gcsStorage) Upload(ctx context.Context, path string, content io.Reader, contentType string) error {
	key, err := blob.CleanPath(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if w.ContentType == "" {
		w.ContentType = blob.ContentType(key)
	}
	if _, err = io.Copy(w, content); err != nil {
		_ = w.Close()
		log.Error().Err(err).Str("key", key).Msg("failed to write data to GCS")
		return fmt.Errorf("%w: %s", blob.ErrInternal, err)
	}
	if err = w.Close(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to close GCS writer")
		return fmt.Errorf("%w: %s", blob.ErrInternal, err)
	}
	return nil
}

func (s *gcsStorage) URL(ctx context.Context, path string) (string, error) {
	return blob.JoinURL(s.base, path)
}

func (s *gcsStorage) DeleteByURL(ctx context.Context, u string) error {
	key, err := blob.PathFromURL(s.base, u)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err = s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrObjectNotExist):
		return blob.ErrNotExist
	default:
		log.Error().Err(err).Str("key", key).Msg("failed to delete GCS object")
		return fmt.Errorf("%w: %s", blob.ErrInternal, err)
	}
}
