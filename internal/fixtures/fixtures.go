// Package fixtures holds the accounts and blogs scenarios are built from.
package fixtures

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bloglist/e2etest/internal/models"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// MinBlogs is the number of blogs the ordering scenario needs
const MinBlogs = 3

// Fixture errors
var (
	ErrNoUsers     = errors.New("fixtures must define at least one user")
	ErrEmptyName   = errors.New("user name cannot be empty")
	ErrTooFewBlogs = fmt.Errorf("fixtures must define at least %d blogs", MinBlogs)
)

// Set is the data seeded into the backend and entered through the UI
type Set struct {
	Users []models.User `yaml:"users"`
	Blogs []models.Blog `yaml:"blogs"`
}

// Default returns the built-in fixtures
func Default() *Set {
	return &Set{
		Users: []models.User{
			{Name: "Matti Luukkainen", Username: "mluukkai", Password: "salainen"},
			{Name: "Testor 1", Username: "testor1", Password: "Aa123456"},
		},
		Blogs: []models.Blog{
			{Title: "first blog title", Author: "Testor", URL: "test url"},
			{Title: "second blog title", Author: "Testor2", URL: "test url2"},
			{Title: "third blog title", Author: "Testor3", URL: "test url3"},
		},
	}
}

// Load reads fixtures from a YAML file. An empty path yields Default().
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load fixtures from %q: %w", path, err)
	}

	var set Set
	if err := k.UnmarshalWithConf("", &set, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures from %q: %w", path, err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("fixtures validation failed for %q: %w", path, err)
	}

	return &set, nil
}

// Resolve makes a relative fixtures path relative to root.
// Tests run from their package directory, so E2E_FIXTURES is given relative to the module root.
func Resolve(path, root string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// Validate checks every record and rejects duplicate usernames.
// Users need a display name because scenarios look for "<name> logged in".
func (s *Set) Validate() error {
	if len(s.Users) == 0 {
		return ErrNoUsers
	}

	seen := make(map[string]bool, len(s.Users))
	for i, user := range s.Users {
		if err := user.Validate(); err != nil {
			return fmt.Errorf("users[%d]: %w", i, err)
		}
		if user.Name == "" {
			return fmt.Errorf("users[%d]: %w: user %s", i, ErrEmptyName, user.Username)
		}
		if seen[user.Username] {
			return fmt.Errorf("users[%d]: duplicate username %s", i, user.Username)
		}
		seen[user.Username] = true
	}

	if len(s.Blogs) < MinBlogs {
		return fmt.Errorf("%w: got %d", ErrTooFewBlogs, len(s.Blogs))
	}
	for i, blog := range s.Blogs {
		if err := blog.Validate(); err != nil {
			return fmt.Errorf("blogs[%d]: %w", i, err)
		}
	}
	return nil
}

// User looks up a seeded account by username
func (s *Set) User(username string) (models.User, bool) {
	for _, user := range s.Users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// Blog returns the i-th blog fixture
func (s *Set) Blog(i int) (models.Blog, error) {
	if i < 0 || i >= len(s.Blogs) {
		return models.Blog{}, fmt.Errorf("no blog fixture %d: %d defined", i, len(s.Blogs))
	}
	return s.Blogs[i], nil
}
