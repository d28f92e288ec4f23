// The initialization package contains functions that setup required dependencies such as the SQLite database,
// the document store and the blob storage backend.
package initialization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hjs-ah/portfolio/internal/config"
	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/db/firestore"
	"github.com/hjs-ah/portfolio/internal/db/impl"
	"github.com/hjs-ah/portfolio/internal/queue"
	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/hjs-ah/portfolio/internal/storage/filestore"
	"github.com/hjs-ah/portfolio/internal/storage/gcs"
	"github.com/hjs-ah/portfolio/internal/storage/minio"
	"github.com/hjs-ah/portfolio/migrations"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupDB applies all remaining migrations.
func SetupDB(d *sql.DB, dbname string) error {
	log.Info().Msg("starting migrations")
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite3 migration driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", src, dbname, driver)
	if err != nil {
		return fmt.Errorf("failed to create Migrate object: %w", err)
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("database is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func OpenDB(connString string) (*sql.DB, error) {
	d, err := sql.Open("sqlite3", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", connString, err)
	}
	if err = d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", connString, err)
	}
	return d, nil
}

// SetupLogger configures the global logger.
func SetupLogger(cfg *config.Configuration) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// InitQueue creates the task queue client and its tables.
func InitQueue(d *sql.DB) (*backlite.Client, error) {
	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              d,
		Logger:          queue.Logger{},
		ReleaseAfter:    10 * time.Minute,
		NumWorkers:      2,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}

// OpenDocStore returns the document store selected by the docstore.driver setting. The sqlite driver keeps the
// documents in d.
func OpenDocStore(ctx context.Context, cfg *config.Configuration, d *sql.DB) (db.DB, error) {
	switch cfg.DocStore.Driver {
	case config.SqliteDriver:
		return impl.New(d), nil
	case config.FirestoreDriver:
		return firestore.New(ctx, cfg.DocStore.ProjectID, cfg.DocStore.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown docstore driver %q", cfg.DocStore.Driver)
	}
}

// OpenStorage returns the blob storage selected by the storage.driver setting. The returned FileStore is non-nil
// only for the filestore driver, whose blobs are served by the application itself.
func OpenStorage(ctx context.Context, cfg *config.Configuration) (storage.Storage, *filestore.FileStore, error) {
	switch cfg.Storage.Driver {
	case config.FileStoreDriver:
		fs, err := filestore.New(cfg.Storage.FsRoot, cfg.Storage.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		return fs, fs, nil
	case config.MinioDriver:
		st, err := minio.New(ctx, cfg.Minio)
		return st, nil, err
	case config.GCSDriver:
		st, err := gcs.New(ctx, cfg.GCS)
		return st, nil, err
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
