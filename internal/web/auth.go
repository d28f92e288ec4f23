package web

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/gate"
	"github.com/hjs-ah/portfolio/internal/identity/local"
	"github.com/rs/zerolog/log"
)

const SessionKey = "user"

type Session struct {
	AccountID int64
	Email     string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != (Session{}) && err == nil {
				r = r.WithContext(context.WithValue(r.Context(), key{}, s))
			}

			h.ServeHTTP(w, r)
		})
	}
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				h.ServeHTTP(w, r)
				return
			}
			render(w, http.StatusForbidden, map[string]string{"error": "Unauthenticated"})
		})
	}
}

// cookieStore keeps the signed in user in the encrypted session cookie.
type cookieStore struct {
	session *scs.Session
	w       http.ResponseWriter
}

func (c cookieStore) Load() (domain.User, bool) {
	var s Session
	if err := c.session.GetObject(SessionKey, &s); err != nil || s == (Session{}) {
		return domain.User{}, false
	}
	return domain.User{AccountID: s.AccountID, Email: s.Email}, true
}

func (c cookieStore) Save(u domain.User) error {
	return c.session.PutObject(c.w, SessionKey, Session{AccountID: u.AccountID, Email: u.Email})
}

func (c cookieStore) Clear() error {
	return c.session.Destroy(c.w)
}

// gateFor returns a started gate observing the session of the request. The caller must stop it.
func (h *Handler) gateFor(w http.ResponseWriter, r *http.Request) *gate.Gate {
	provider := local.NewSession(h.accounts, cookieStore{
		session: h.SessionManager.Load(r),
		w:       w,
	})
	g := gate.New(provider, h.service)
	g.Start(r.Context())
	return g
}

// Admin renders the login view or, for the signed in owner, the dashboard with all of its content.
func Admin(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := h.gateFor(w, r)
		defer g.Stop()
		render(w, http.StatusOK, g.View())
	}
}

func Login(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render(w, http.StatusBadRequest, gate.View{Screen: gate.LoginScreen, LoginError: "Invalid form"})
			return
		}

		g := h.gateFor(w, r)
		defer g.Stop()

		err := g.SignIn(r.Context(), r.Form.Get("email"), r.Form.Get("password"))
		h.Metrics.RecordSignIn(err == nil)
		if err != nil {
			log.Info().Err(err).Msg("sign in failed")
			render(w, http.StatusUnauthorized, g.View())
			return
		}
		render(w, http.StatusOK, g.View())
	}
}

func Logout(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := h.gateFor(w, r)
		defer g.Stop()

		g.SignOut(r.Context())
		render(w, http.StatusOK, g.View())
	}
}
