package gcs

import (
	"context"
	"errors"
	"testing"

	"github.com/hjs-ah/portfolio/internal/config"
	blob "github.com/hjs-ah/portfolio/internal/storage"
)

func TestBaseURL(t *testing.T) {
	cases := []struct {
		name     string
		cfg      config.GCS
		expected string
	}{
		{"public host", config.GCS{Bucket: "portfolio"}, "https://storage.googleapis.com/portfolio"},
		{"custom domain", config.GCS{Bucket: "portfolio", BaseURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := baseURL(c.cfg); got != c.expected {
				t.Errorf("expected %s, got %s", c.expected, got)
			}
		})
	}
}

func TestURLRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := &gcsStorage{bucket: "portfolio", base: baseURL(config.GCS{Bucket: "portfolio"})}

	u, err := s.URL(ctx, "creations/1700000000000_sunset.png")
	if err != nil {
		t.Fatal(err)
	}
	if u != "https://storage.googleapis.com/portfolio/creations/1700000000000_sunset.png" {
		t.Errorf("unexpected url %s", u)
	}

	key, err := blob.PathFromURL(s.base, u)
	if err != nil {
		t.Fatal(err)
	}
	if key != "creations/1700000000000_sunset.png" {
		t.Errorf("unexpected key %s", key)
	}

	cases := []struct {
		url      string
		expected error
	}{
		{"https://storage.googleapis.com/another-bucket/creations/sunset.png", blob.ErrForeignURL},
		{"https://storage.googleapis.com/portfolio/../secret.png", blob.ErrInvalidPath},
	}
	for _, c := range cases {
		t.Run(c.url, func(t *testing.T) {
			if err := s.DeleteByURL(ctx, c.url); !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
		})
	}
}
