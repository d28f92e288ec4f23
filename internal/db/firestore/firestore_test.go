package firestore

import (
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/hjs-ah/portfolio/internal/db"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHandleError(t *testing.T) {
	f := &fsImpl{}
	cases := []struct {
		name     string
		err      error
		expected error
	}{
		{"no error", nil, nil},
		{"not found", status.Error(codes.NotFound, "no document"), db.ErrNotFound},
		{"invalid query", fmt.Errorf("%w: order", db.ErrInvalidQuery), db.ErrInvalidQuery},
		{"unavailable", status.Error(codes.Unavailable, "try later"), db.ErrInternal},
		{"other", errors.New("boom"), db.ErrInternal},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := f.HandleError(c.err)
			if c.expected == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	if direction(db.Asc) != firestore.Asc {
		t.Error("expected ascending order")
	}
	if direction(db.Desc) != firestore.Desc {
		t.Error("expected descending order")
	}
}
