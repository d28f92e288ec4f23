package web

import (
	"github.com/alexedwards/scs"
	"github.com/hjs-ah/portfolio/internal/config"
	"github.com/hjs-ah/portfolio/internal/identity/local"
	"github.com/hjs-ah/portfolio/internal/metrics"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/hjs-ah/portfolio/internal/storage/filestore"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	AdminRoute  = "/admin"
	LoginRoute  = "/admin/login"
	LogoutRoute = "/admin/logout"
	FilesPath   = "/files"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	accounts       local.Credentials
	SessionManager *scs.Manager
	Metrics        metrics.Recorder
	// Gatherer, if set, is served under /metrics.
	Gatherer prometheus.Gatherer
	// Files, if set, serves the blobs of the filestore backend under FilesPath.
	Files *filestore.FileStore
}

func New(config *config.Configuration, service service.Service, accounts local.Credentials, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		accounts:       accounts,
		SessionManager: manager,
		Metrics:        metrics.Nop{},
	}
}
