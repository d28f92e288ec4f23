package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
)

// Account checks the credentials of a new owner account.
func Account(email, password string) error {
	return errors.Join(Email(email), Password(password))
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	_, err := mail.ParseAddress(email)

	return err
}

// Required fails for every field whose value is empty or blank, naming the field. fields alternates names and
// values.
func Required(fields ...string) error {
	var errs []error
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			errs = append(errs, fmt.Errorf("%s is required", fields[i]))
		}
	}
	return errors.Join(errs...)
}
