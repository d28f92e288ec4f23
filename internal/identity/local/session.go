package local

import (
	"context"
	"sync"

	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/identity"
	"github.com/rs/zerolog/log"
)

// Store persists the signed in user across requests, typically in a session cookie.
type Store interface {
	Load() (domain.User, bool)
	Save(user domain.User) error
	Clear() error
}

// Session is an identity.Provider bound to a single browser session.
type Session struct {
	creds Credentials
	store Store

	mu        sync.Mutex
	observers map[int]func(*domain.User)
	next      int
}

func NewSession(creds Credentials, store Store) *Session {
	return &Session{
		creds:     creds,
		store:     store,
		observers: map[int]func(*domain.User){},
	}
}

func (s *Session) current() *domain.User {
	if u, ok := s.store.Load(); ok {
		return &u
	}
	return nil
}

func (s *Session) Observe(fn func(*domain.User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.observers[id] = fn
	s.mu.Unlock()

	fn(s.current())

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.creds.Verify(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}

	if err = s.store.Save(user); err != nil {
		log.Error().Err(err).Msg("failed to store session")
		return domain.User{}, identity.ErrInternal
	}

	s.notify(&user)
	return user, nil
}

func (s *Session) SignOut(ctx context.Context) {
	if err := s.store.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	s.notify(nil)
}

func (s *Session) notify(user *domain.User) {
	s.mu.Lock()
	fns := make([]func(*domain.User), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
