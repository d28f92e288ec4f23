package initialization

import (
	"context"
	"testing"

	"github.com/hjs-ah/portfolio/internal/config"
	"github.com/rs/zerolog"
)

func TestSetupDB(t *testing.T) {
	d, err := OpenDB("file:inittest?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	d.SetMaxOpenConns(1)
	defer d.Close()

	if err = SetupDB(d, "inittest"); err != nil {
		t.Fatal(err)
	}
	// Nothing left to apply.
	if err = SetupDB(d, "inittest"); err != nil {
		t.Fatal(err)
	}

	for _, table := range []string{"documents", "accounts"} {
		var n int
		err = d.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("table %s was not created", table)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cases := []struct {
		name     string
		cfg      config.Configuration
		expected zerolog.Level
	}{
		{"default", config.Configuration{}, zerolog.InfoLevel},
		{"configured", config.Configuration{LogLevel: "WARN"}, zerolog.WarnLevel},
		{"unknown", config.Configuration{LogLevel: "loud"}, zerolog.InfoLevel},
		{"debug", config.Configuration{Debug: true, LogLevel: "error"}, zerolog.DebugLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			SetupLogger(&c.cfg)
			if got := zerolog.GlobalLevel(); got != c.expected {
				t.Errorf("expected %s, got %s", c.expected, got)
			}
		})
	}
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	cfg := config.Configuration{Storage: config.Storage{
		Driver:  config.FileStoreDriver,
		FsRoot:  t.TempDir(),
		BaseURL: "http://localhost:8080/files/",
	}}
	st, files, err := OpenStorage(ctx, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if files == nil {
		t.Fatal("the filestore driver should be served by the application")
	}

	u, err := st.URL(ctx, "profile/me.png")
	if err != nil {
		t.Fatal(err)
	}
	if u != "http://localhost:8080/files/profile/me.png" {
		t.Errorf("unexpected url %s", u)
	}

	cfg.Storage.Driver = "floppy"
	if _, _, err = OpenStorage(ctx, &cfg); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}

func TestOpenDocStore(t *testing.T) {
	cfg := config.Configuration{DocStore: config.DocStore{Driver: "mongo"}}
	if _, err := OpenDocStore(context.Background(), &cfg, nil); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}
