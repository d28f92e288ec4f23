package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/go-cmp/cmp"
	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/identity"
	"github.com/hjs-ah/portfolio/migrations"
	_ "github.com/mattn/go-sqlite3"
)

const (
	ownerEmail    = "owner@example.com"
	ownerPassword = "correct horse"
)

var accounts *Accounts

func TestMain(m *testing.M) {
	d, err := sql.Open("sqlite3", "file:localtest?mode=memory&cache=shared")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open connection: %s", err)
		os.Exit(1)
	}
	d.SetMaxOpenConns(1)

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read migrations: %s", err)
		os.Exit(1)
	}
	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create driver: %s", err)
		os.Exit(1)
	}
	mig, err := migrate.NewWithInstance("iofs", src, "localtest", driver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create database object: %s", err)
		os.Exit(1)
	}
	if err = mig.Up(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %s", err)
		os.Exit(1)
	}

	accounts = NewAccounts(d)
	if _, err = accounts.Create(context.Background(), " Owner@Example.com ", ownerPassword); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create account: %s", err)
		os.Exit(1)
	}

	code := m.Run()
	d.Close()
	os.Exit(code)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	_, err := accounts.Create(ctx, ownerEmail, "another password")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected %s, got %v", ErrEmailTaken, err)
	}

	_, err = accounts.Create(ctx, "not an email", "long enough")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected %s, got %v", ErrInvalidInput, err)
	}

	_, err = accounts.Create(ctx, "second@example.com", "short")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected %s, got %v", ErrInvalidInput, err)
	}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		err      error
	}{
		{"valid credentials", ownerEmail, ownerPassword, nil},
		{"case insensitive email", "OWNER@example.com", ownerPassword, nil},
		{"wrong password", ownerEmail, "wrong horse", identity.ErrWrongPassword},
		{"unknown user", "nobody@example.com", ownerPassword, identity.ErrUserNotFound},
		{"malformed email", "owner", ownerPassword, identity.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u, err := accounts.Verify(context.Background(), c.email, c.password)
			if !errors.Is(err, c.err) {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
			if c.err == nil && u.Email != ownerEmail {
				t.Errorf("unexpected user %+v", u)
			}
		})
	}
}

type memStore struct {
	user *domain.User
}

func (m *memStore) Load() (domain.User, bool) {
	if m.user == nil {
		return domain.User{}, false
	}
	return *m.user, true
}

func (m *memStore) Save(u domain.User) error {
	m.user = &u
	return nil
}

func (m *memStore) Clear() error {
	m.user = nil
	return nil
}

func TestSessionObserve(t *testing.T) {
	ctx := context.Background()
	session := NewSession(accounts, &memStore{})

	var seen []string
	unsubscribe := session.Observe(func(u *domain.User) {
		if u == nil {
			seen = append(seen, "signed out")
		} else {
			seen = append(seen, u.Email)
		}
	})

	if _, err := session.SignIn(ctx, ownerEmail, "wrong horse"); !errors.Is(err, identity.ErrWrongPassword) {
		t.Errorf("expected %s, got %v", identity.ErrWrongPassword, err)
	}
	if _, err := session.SignIn(ctx, ownerEmail, ownerPassword); err != nil {
		t.Fatal(err)
	}
	session.SignOut(ctx)

	unsubscribe()
	if _, err := session.SignIn(ctx, ownerEmail, ownerPassword); err != nil {
		t.Fatal(err)
	}

	expected := []string{"signed out", ownerEmail, "signed out"}
	if diff := cmp.Diff(expected, seen); diff != "" {
		t.Error(diff)
	}
}

func TestSessionRestoresUser(t *testing.T) {
	store := &memStore{user: &domain.User{AccountID: 1, Email: ownerEmail}}
	session := NewSession(accounts, store)

	var got *domain.User
	defer session.Observe(func(u *domain.User) { got = u })()

	if got == nil || got.Email != ownerEmail {
		t.Errorf("expected the stored user to be reported, got %+v", got)
	}
}
