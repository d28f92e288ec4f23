package web

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hjs-ah/portfolio/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(RequestLogger()...)
	r.Use(SessionMiddleware(h))

	r.Route(AdminRoute, func(r chi.Router) {
		r.Get("/", Admin(h))
		r.Post("/login", Login(h))
		r.Post("/logout", Logout(h))

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Get("/profile", GetProfile(h))
			r.Post("/profile", SaveProfile(h))
			r.Post("/profile/image", UploadProfileImage(h))

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", ListArticles(h))
				r.Post("/", SaveArticle(h))
				r.Get("/new", NewArticle(h))
				r.Get("/{id}", EditArticle(h))
				r.Delete("/{id}", DeleteArticle(h))
			})

			r.Route("/creations", func(r chi.Router) {
				r.Get("/", ListCreations(h))
				r.Post("/", SaveCreation(h))
				r.Post("/preview", Preview(h))
				r.Delete("/{id}", DeleteCreation(h))
			})

			r.Route("/books", func(r chi.Router) {
				r.Get("/", ListBooks(h))
				r.Post("/", SaveBook(h))
				r.Post("/preview", Preview(h))
				r.Delete("/{id}", DeleteBook(h))
			})
		})
	})

	r.Get("/api/portfolio", Portfolio(h))

	if h.Files != nil {
		r.Get(FilesPath+"/*", GetFile(h))
	}
	if h.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(h.Gatherer))
	}

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	dir := h.Config.StaticDir
	if !filepath.IsAbs(dir) {
		wd, _ := os.Getwd()
		dir = filepath.Join(wd, dir)
	}

	fileServer := http.FileServer(http.FS(os.DirFS(dir)))
	r.Handle("/*", fileServer)
}

// RequestLogger logs one line per request with the global logger.
func RequestLogger() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		hlog.NewHandler(log.Logger),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			level := zerolog.InfoLevel
			if status >= http.StatusInternalServerError {
				level = zerolog.ErrorLevel
			}
			hlog.FromRequest(r).WithLevel(level).
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("request")
		}),
	}
}
