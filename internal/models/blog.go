package models

import (
	"errors"
	"fmt"
)

// Blog validation errors
var (
	ErrEmptyTitle  = errors.New("blog title cannot be empty")
	ErrEmptyAuthor = errors.New("blog author cannot be empty")
	ErrEmptyURL    = errors.New("blog URL cannot be empty")
)

// Blog is the data entered into the new blog form
type Blog struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	URL    string `json:"url" yaml:"url"`
}

// Validate checks that every form field has a value
func (b Blog) Validate() error {
	if b.Title == "" {
		return ErrEmptyTitle
	}
	if b.Author == "" {
		return fmt.Errorf("%w: blog %q", ErrEmptyAuthor, b.Title)
	}
	if b.URL == "" {
		return fmt.Errorf("%w: blog %q", ErrEmptyURL, b.Title)
	}
	return nil
}

// Heading returns the collapsed list row text, title followed by author
func (b Blog) Heading() string {
	return fmt.Sprintf("%s %s", b.Title, b.Author)
}

// LikesText returns the like counter text shown in an expanded row
func LikesText(likes int) string {
	return fmt.Sprintf("likes %d", likes)
}
