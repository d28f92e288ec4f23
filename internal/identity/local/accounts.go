// Package local authenticates the owner against accounts kept in the application's SQLite database.
package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/identity"
	"github.com/hjs-ah/portfolio/internal/validate"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

var (
	ErrInvalidInput = errors.New("invalid")
	ErrEmailTaken   = errors.New("an account with this email already exists")
)

// Credentials checks an email and password pair.
type Credentials interface {
	Verify(ctx context.Context, email, password string) (domain.User, error)
}

type Accounts struct {
	DB *sql.DB
}

func NewAccounts(d *sql.DB) *Accounts {
	return &Accounts{DB: d}
}

// Create stores a new account with a bcrypt hash of password.
func (a *Accounts) Create(ctx context.Context, email, password string) (domain.Account, error) {
	email = normalize(email)
	if err := validate.Account(email, password); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{Email: email, Password: string(hash)}
	res, err := a.DB.ExecContext(ctx, "INSERT INTO accounts(email, password, created) VALUES (?, ?, ?)",
		email, account.Password, time.Now().Unix())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.Account{}, ErrEmailTaken
		}
		return domain.Account{}, err
	}

	account.ID, err = res.LastInsertId()
	return account, err
}

// Verify fails with one of the identity errors, so its message can be shown in the login view.
func (a *Accounts) Verify(ctx context.Context, email, password string) (domain.User, error) {
	email = normalize(email)
	if validate.Email(email) != nil {
		return domain.User{}, identity.ErrInvalidEmail
	}

	var account domain.Account
	err := a.DB.QueryRowContext(ctx, "SELECT id, email, password FROM accounts WHERE email = ?", email).
		Scan(&account.ID, &account.Email, &account.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, identity.ErrUserNotFound
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to read account")
		return domain.User{}, identity.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return domain.User{}, identity.ErrWrongPassword
	}

	return domain.User{AccountID: account.ID, Email: account.Email}, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
