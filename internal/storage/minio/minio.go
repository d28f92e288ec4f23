// Package minio keeps blobs in an S3 compatible bucket.
package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/hjs-ah/portfolio/internal/config"
	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

type minioStorage struct {
	client *minio.Client
	bucket string
	base   string
}

// New connects to the server and creates the bucket if it does not exist yet. Objects must be publicly readable
// for the returned URLs to work as image sources; bucket policies are left to the operator.
func New(ctx context.Context, cfg config.Minio) (storage.Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		log.Info().Str("bucket", cfg.Bucket).Msg("creating bucket")
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &minioStorage{
		client: client,
		bucket: cfg.Bucket,
		base:   bucketURL(client.EndpointURL(), cfg.Bucket),
	}, nil
}

// bucketURL is the path-style URL of the bucket, the prefix of every object URL.
func bucketURL(endpoint *url.URL, bucket string) string {
	return strings.TrimSuffix(endpoint.String(), "/") + "/" + bucket
}

func (s *minioStorage) Upload(ctx context.Context, path string, content io.Reader, contentType string) error {
	key, err := storage.CleanPath(path)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = storage.ContentType(key)
	}

	// Size -1 makes the client stream the content as a multipart upload.
	_, err = s.client.PutObject(ctx, s.bucket, key, content, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload to minio")
		return fmt.Errorf("%w: %s", storage.ErrInternal, err)
	}
	return nil
}

func (s *minioStorage) URL(ctx context.Context, path string) (string, error) {
	return storage.JoinURL(s.base, path)
}

func (s *minioStorage) DeleteByURL(ctx context.Context, u string) error {
	key, err := storage.PathFromURL(s.base, u)
	if err != nil {
		return err
	}

	// RemoveObject succeeds on missing keys, so existence is checked first.
	if _, err = s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Str("key", key).Msg("failed to stat object")
		return fmt.Errorf("%w: %s", storage.ErrInternal, err)
	}

	if err = s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")
		return fmt.Errorf("%w: %s", storage.ErrInternal, err)
	}
	return nil
}
