package minio

import (
	"context"
	"errors"
	"testing"

	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func TestBucketURL(t *testing.T) {
	cases := []struct {
		endpoint string
		secure   bool
		expected string
	}{
		{"localhost:9000", false, "http://localhost:9000/portfolio"},
		{"s3.example.com", true, "https://s3.example.com/portfolio"},
	}

	for _, c := range cases {
		t.Run(c.endpoint, func(t *testing.T) {
			client, err := minio.New(c.endpoint, &minio.Options{Creds: credentials.NewStaticV4("", "", ""), Secure: c.secure})
			if err != nil {
				t.Fatal(err)
			}
			if got := bucketURL(client.EndpointURL(), "portfolio"); got != c.expected {
				t.Errorf("expected %s, got %s", c.expected, got)
			}
		})
	}
}

func TestURLRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := &minioStorage{bucket: "portfolio", base: "http://localhost:9000/portfolio"}

	u, err := s.URL(ctx, "books/1700000000000_my cover.png")
	if err != nil {
		t.Fatal(err)
	}
	if u != "http://localhost:9000/portfolio/books/1700000000000_my%20cover.png" {
		t.Errorf("unexpected url %s", u)
	}

	key, err := storage.PathFromURL(s.base, u)
	if err != nil {
		t.Fatal(err)
	}
	if key != "books/1700000000000_my cover.png" {
		t.Errorf("unexpected key %s", key)
	}

	// Rejected before the server is contacted.
	err = s.DeleteByURL(ctx, "http://localhost:9000/other/books/cover.png")
	if !errors.Is(err, storage.ErrForeignURL) {
		t.Errorf("expected ErrForeignURL, got %v", err)
	}
}
