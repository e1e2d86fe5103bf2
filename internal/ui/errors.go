package ui

import (
	"errors"

	"github.com/playwright-community/playwright-go"
)

// IsTimeout reports whether err came from an element or assertion that did
// not become ready within the automation timeout
func IsTimeout(err error) bool {
	if errors.Is(err, playwright.ErrTimeout) {
		return true
	}
	var pwErr *playwright.Error
	return errors.As(err, &pwErr) && pwErr.Name == "TimeoutError"
}

// Describe labels err for a test failure message
func Describe(err error) string {
	if IsTimeout(err) {
		return "timed out: " + err.Error()
	}
	return err.Error()
}
