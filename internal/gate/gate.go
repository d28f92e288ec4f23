// Package gate switches the admin console between the login view and the dashboard as the owner signs in and
// out.
package gate

import (
	"context"
	"sync"

	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/identity"
	"github.com/hjs-ah/portfolio/internal/service"
)

type Screen string

const (
	LoginScreen     Screen = "login"
	DashboardScreen Screen = "dashboard"
)

// SigningIn is shown in place of the login error while credentials are being checked.
const SigningIn = "Signing in..."

type View struct {
	Screen     Screen             `json:"screen"`
	Email      string             `json:"email,omitempty"`
	LoginError string             `json:"loginError,omitempty"`
	Data       *service.Dashboard `json:"data,omitempty"`
}

// Reloader loads everything the dashboard shows.
type Reloader interface {
	LoadAll(ctx context.Context) service.Dashboard
}

type Gate struct {
	provider identity.Provider
	reloader Reloader

	mu          sync.Mutex
	ctx         context.Context
	view        View
	unsubscribe func()
}

func New(provider identity.Provider, reloader Reloader) *Gate {
	return &Gate{
		provider: provider,
		reloader: reloader,
		ctx:      context.Background(),
		view:     View{Screen: LoginScreen},
	}
}

// Start subscribes to the provider; the view reflects the current state as soon as Start returns. ctx is used for
// the reloads triggered by sign-ins.
func (g *Gate) Start(ctx context.Context) {
	g.mu.Lock()
	if g.unsubscribe != nil {
		g.mu.Unlock()
		return
	}
	g.ctx = ctx
	g.mu.Unlock()

	unsubscribe := g.provider.Observe(g.changed)

	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()
}

func (g *Gate) Stop() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (g *Gate) changed(user *domain.User) {
	if user == nil {
		g.mu.Lock()
		g.view = View{Screen: LoginScreen}
		g.mu.Unlock()
		return
	}

	g.mu.Lock()
	ctx := g.ctx
	g.mu.Unlock()

	data := g.reloader.LoadAll(ctx)

	g.mu.Lock()
	g.view = View{Screen: DashboardScreen, Email: user.Email, Data: &data}
	g.mu.Unlock()
}

// SignIn reports failures in the view's LoginError, on the login screen even if a user was already signed in.
// The switch to the dashboard happens through the provider's notification, not here.
func (g *Gate) SignIn(ctx context.Context, email, password string) error {
	g.mu.Lock()
	g.view.LoginError = SigningIn
	g.mu.Unlock()

	_, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		g.mu.Lock()
		g.view = View{Screen: LoginScreen, LoginError: identity.Message(err)}
		g.mu.Unlock()
	}
	return err
}

func (g *Gate) SignOut(ctx context.Context) {
	g.provider.SignOut(ctx)
}

func (g *Gate) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.view
}
