package core

import (
	"context"
	"path"
	"strings"
	"time"

	"codeberg.org/gruf/go-mutexes"
	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/metrics"
	"github.com/hjs-ah/portfolio/internal/queue"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/hjs-ah/portfolio/internal/state"
	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const ProfileID = "profile"

var (
	Root      = db.Collection("portfolio")
	Articles  = Root.Sub("content", "articles")
	Creations = Root.Sub("content", "creations")
	Books     = Root.Sub("content", "books")
)

type AppService struct {
	DB      db.DB
	Storage storage.Storage
	Metrics metrics.Recorder
	Orphans queue.Sweeper
	Now     func() time.Time

	locks  *mutexes.MutexMap
	policy *bluemonday.Policy
}

func New(state state.State) service.Service {
	m := state.Metrics
	if m == nil {
		m = metrics.Nop{}
	}
	locks := mutexes.MutexMap{}
	return &AppService{
		DB:      state.DB,
		Storage: state.Storage,
		Metrics: m,
		Orphans: state.Orphans,
		Now:     time.Now,
		locks:   &locks,
		policy:  bluemonday.StrictPolicy(),
	}
}

func (s *AppService) LoadAll(ctx context.Context) service.Dashboard {
	var d service.Dashboard
	// Each loader writes to its own field and never returns an error.
	var g errgroup.Group
	g.Go(func() error { d.Profile = s.LoadProfile(ctx); return nil })
	g.Go(func() error { d.Articles = s.ListArticles(ctx); return nil })
	g.Go(func() error { d.Creations = s.ListCreations(ctx); return nil })
	g.Go(func() error { d.Books = s.ListBooks(ctx); return nil })
	_ = g.Wait()
	return d
}

func (s *AppService) Portfolio(ctx context.Context) (service.Portfolio, error) {
	p := service.Portfolio{
		Articles:  []domain.Article{},
		Creations: []domain.Creation{},
		Books:     []domain.Book{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p.Profile, err = s.profile(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		p.Articles, err = s.articles(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		p.Creations, err = s.creations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		p.Books, err = s.books(gctx)
		return err
	})
	return p, g.Wait()
}

// orphaned reports a blob that no document references, and schedules its deletion if enabled.
func (s *AppService) orphaned(ctx context.Context, url string) {
	s.Metrics.RecordOrphan()
	log.Warn().Str("url", url).Msg("uploaded blob is not referenced by any document")
	if s.Orphans == nil {
		return
	}
	if err := s.Orphans.DeleteLater(context.WithoutCancel(ctx), url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to schedule orphan deletion")
	}
}

// decode fills out from the document. A field that cannot be converted keeps its zero value, so one malformed
// field never hides the rest of the content.
func decode(doc db.Document, out any) {
	if err := db.Decode(doc.Data, out); err != nil {
		log.Warn().Err(err).Str("id", doc.ID).Msg("document has invalid fields")
	}
}

// fileName keeps the last element of an uploaded file's name, which browsers may send with a directory.
func fileName(u *domain.Upload) string {
	name := path.Base(strings.ReplaceAll(u.Filename, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return "upload"
	}
	return name
}

func contentType(u *domain.Upload) string {
	if u.ContentType != "" {
		return u.ContentType
	}
	return storage.ContentType(u.Filename)
}
