package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/go-cmp/cmp"
	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/migrations"
	_ "github.com/mattn/go-sqlite3"
)

var store *dbImpl

func TestMain(m *testing.M) {
	d, err := sql.Open("sqlite3", "file:impltest?mode=memory&cache=shared")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open connection: %s", err)
		os.Exit(1)
	}
	d.SetMaxOpenConns(1)

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read migrations: %s", err)
		os.Exit(1)
	}

	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create driver: %s", err)
		os.Exit(1)
	}

	mig, err := migrate.NewWithInstance("iofs", src, "impltest", driver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create database object: %s", err)
		os.Exit(1)
	}

	if err = mig.Up(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %s", err)
		os.Exit(1)
	}

	store = &dbImpl{db: d, now: time.Now}
	code := m.Run()
	d.Close()
	os.Exit(code)
}

func TestSetMerge(t *testing.T) {
	ctx := context.Background()
	coll := db.Collection("merge")

	err := store.SetMerge(ctx, coll, "profile", map[string]any{
		"name":  "Antone",
		"title": "Writer",
		"socialLinks": map[string]any{
			"medium":   "https://medium.com/@a",
			"linkedin": "https://linkedin.com/in/a",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = store.SetMerge(ctx, coll, "profile", map[string]any{
		"title":       "Designer",
		"socialLinks": map[string]any{"linkedin": ""},
	})
	if err != nil {
		t.Fatal(err)
	}

	doc, err := store.Get(ctx, coll, "profile")
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]any{
		"name":  "Antone",
		"title": "Designer",
		"socialLinks": map[string]any{
			"medium":   "https://medium.com/@a",
			"linkedin": "",
		},
	}
	if diff := cmp.Diff(expected, doc.Data); diff != "" {
		t.Error(diff)
	}
}

func TestGetMissing(t *testing.T) {
	_, err := store.Get(context.Background(), "missing", "nothing")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	coll := db.Collection("portfolio/content/articles")

	id, err := store.Add(ctx, coll, map[string]any{"title": "Old", "url": "https://a.example"})
	if err != nil {
		t.Fatal(err)
	}

	if err = store.Update(ctx, coll, id, map[string]any{"title": "New"}); err != nil {
		t.Fatal(err)
	}

	doc, err := store.Get(ctx, coll, id)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"title": "New", "url": "https://a.example"}, doc.Data); diff != "" {
		t.Error(diff)
	}

	err = store.Update(ctx, coll, "deleted-elsewhere", map[string]any{"title": "x"})
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}
}

func TestGetAllOrdered(t *testing.T) {
	ctx := context.Background()
	coll := db.Collection("portfolio/content/creations")

	for _, data := range []map[string]any{
		{"title": "second", "order": 2},
		{"title": "unordered"},
		{"title": "first", "order": 1},
		{"title": "fourth", "order": 4},
	} {
		if _, err := store.Add(ctx, coll, data); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		name     string
		query    *db.Query
		expected []string
	}{
		{"ascending", &db.Query{OrderBy: "order", Direction: db.Asc}, []string{"first", "second", "fourth"}},
		{"descending", &db.Query{OrderBy: "order", Direction: db.Desc}, []string{"fourth", "second", "first"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			docs, err := store.GetAll(ctx, coll, c.query)
			if err != nil {
				t.Fatal(err)
			}
			titles := []string{}
			for _, d := range docs {
				titles = append(titles, d.Data["title"].(string))
			}
			if diff := cmp.Diff(c.expected, titles); diff != "" {
				t.Error(diff)
			}
		})
	}

	all, err := store.GetAll(ctx, coll, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 documents without ordering, got %d", len(all))
	}

	_, err = store.GetAll(ctx, coll, &db.Query{OrderBy: "order; DROP TABLE documents"})
	if !errors.Is(err, db.ErrInvalidQuery) {
		t.Errorf("expected %s, got %v", db.ErrInvalidQuery, err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	coll := db.Collection("portfolio/content/books")

	id, err := store.Add(ctx, coll, map[string]any{"title": "Dune"})
	if err != nil {
		t.Fatal(err)
	}

	if err = store.Delete(ctx, coll, id); err != nil {
		t.Fatal(err)
	}
	if _, err = store.Get(ctx, coll, id); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s, got %v", db.ErrNotFound, err)
	}
	if err = store.Delete(ctx, coll, id); err != nil {
		t.Errorf("deleting a missing document should succeed, got %s", err)
	}
}
