package main

import (
	"context"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/hjs-ah/portfolio/internal/config"
	"github.com/hjs-ah/portfolio/internal/identity/local"
	"github.com/hjs-ah/portfolio/internal/initialization"
	"github.com/hjs-ah/portfolio/internal/metrics"
	"github.com/hjs-ah/portfolio/internal/queue"
	service "github.com/hjs-ah/portfolio/internal/service/impl"
	"github.com/hjs-ah/portfolio/internal/state"
	"github.com/hjs-ah/portfolio/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const usage = `usage: portfolio [serve|migrate|create-owner] [flags]

  serve          run the admin console and the public site (default)
  migrate        apply the database migrations
  create-owner   create the owner's account, with --email and --password
`

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	flags := config.Flags()
	email := flags.String("email", "", "email of the owner's account (create-owner)")
	password := flags.String("password", "", "password of the owner's account (create-owner)")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.ReadConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	initialization.SetupLogger(&cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	defer d.Close()
	log.Info().Msg("database connection established")

	if err = initialization.SetupDB(d, cfg.DbUrl); err != nil {
		log.Fatal().Err(err).Send()
	}

	switch command {
	case "migrate":
		return
	case "create-owner":
		account, err := local.NewAccounts(d).Create(ctx, *email, *password)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create account")
		}
		log.Info().Int64("id", account.ID).Str("email", account.Email).Msg("created owner account")
		return
	case "serve":
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err = serve(ctx, &cfg, d); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func serve(ctx context.Context, cfg *config.Configuration, d *sql.DB) error {
	docs, err := initialization.OpenDocStore(ctx, cfg, d)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	st, files, err := initialization.OpenStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open blob storage: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	s := state.State{
		Config:  *cfg,
		DB:      docs,
		Storage: st,
		Metrics: collector,
	}

	if cfg.Storage.CleanupOrphans {
		q, err := initialization.InitQueue(d)
		if err != nil {
			return fmt.Errorf("unable to set up task queue: %w", err)
		}
		s.Orphans = queue.New(ctx, st, q)
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(cfg.SessionKey)
	manager.Secure(cfg.SecureCookies)
	manager.HttpOnly(true)
	manager.Lifetime(7 * 24 * time.Hour)

	handler := web.New(cfg, service.New(s), local.NewAccounts(d), manager)
	handler.Metrics = collector
	handler.Gatherer = reg
	handler.Files = files

	router := chi.NewRouter()
	handler.Mount(router)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Uint16("port", cfg.Port).Msg("started server")
	if err = server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
