package state

import (
	"github.com/hjs-ah/portfolio/internal/config"
	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/metrics"
	"github.com/hjs-ah/portfolio/internal/queue"
	"github.com/hjs-ah/portfolio/internal/storage"
)

// State holds the backends shared by the services.
type State struct {
	Config  config.Configuration
	DB      db.DB
	Storage storage.Storage
	Metrics metrics.Recorder
	// Orphans is nil unless storage.cleanup_orphans is set.
	Orphans queue.Sweeper
}
