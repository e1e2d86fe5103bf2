package models

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// User is an account seeded through the testing API before a scenario runs
type User struct {
	Name     string `json:"name" yaml:"name"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Validate checks that the user can be seeded and used to log in
func (u User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" {
		return fmt.Errorf("%w: user %s", ErrEmptyPassword, u.Username)
	}
	return nil
}

// LoggedInText returns the confirmation the app shows after a successful login
func (u User) LoggedInText() string {
	return fmt.Sprintf("%s logged in", u.Name)
}
