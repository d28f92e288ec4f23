package queue

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hjs-ah/portfolio/internal/mocks"
	"github.com/hjs-ah/portfolio/internal/storage"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"go.uber.org/mock/gomock"
)

const blobURL = "http://localhost:8080/files/creations/1_sunset.png"

func TestDeleteBlob(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		shouldErr bool
	}{
		{"deleted", nil, false},
		{"already gone", storage.ErrNotExist, false},
		{"foreign url", storage.ErrForeignURL, false},
		{"backend failure", errors.New("unavailable"), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mocks.NewMockStorage(ctrl)
			st.EXPECT().DeleteByURL(gomock.Any(), blobURL).Return(c.err)

			err := deleteBlob(st)(context.Background(), DeleteBlobJob{URL: blobURL})
			if c.shouldErr != (err != nil) {
				t.Errorf("expected error: %v, got %v", c.shouldErr, err)
			}
		})
	}
}

func TestDeleteLater(t *testing.T) {
	d, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "queue.db")+"?_journal=WAL&_timeout=5000")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              d,
		Logger:          Logger{},
		ReleaseAfter:    time.Minute,
		NumWorkers:      1,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = client.Install(); err != nil {
		t.Fatal(err)
	}

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	done := make(chan struct{})
	st.EXPECT().DeleteByURL(gomock.Any(), blobURL).DoAndReturn(func(context.Context, string) error {
		close(done)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := New(ctx, st, client)

	if err = sweeper.DeleteLater(ctx, blobURL); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("the blob was not deleted")
	}
}
