package ui

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// BlogEntry scopes interactions to one row of the blog list.
// The row is found by the span holding the blog title; the view button sits
// next to it and the expanded details sit one level further up.
type BlogEntry struct {
	page  playwright.Page
	title string
}

// Entry returns the list row of the blog with the given title
func Entry(page playwright.Page, title string) *BlogEntry {
	return &BlogEntry{page: page, title: title}
}

func (e *BlogEntry) heading() playwright.Locator {
	return e.page.Locator("span", playwright.PageLocatorOptions{HasText: e.title}).Locator("..")
}

func (e *BlogEntry) container() playwright.Locator {
	return e.heading().Locator("..")
}

// Title returns the blog title this entry is bound to
func (e *BlogEntry) Title() string {
	return e.title
}

// WaitVisible blocks until the title span is rendered
func (e *BlogEntry) WaitVisible() error {
	span := e.page.Locator("span", playwright.PageLocatorOptions{HasText: e.title})
	if err := span.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("blog %q never appeared: %w", e.title, err)
	}
	return nil
}

// View expands the entry
func (e *BlogEntry) View() error {
	if err := ViewButton.Within(e.heading()).Click(); err != nil {
		return fmt.Errorf("blog %q: failed to click %s: %w", e.title, ViewButton, err)
	}
	return nil
}

// Like clicks the like button once without waiting for the new count
func (e *BlogEntry) Like() error {
	if err := LikeButton.Within(e.container()).Click(); err != nil {
		return fmt.Errorf("blog %q: failed to click %s: %w", e.title, LikeButton, err)
	}
	return nil
}

// Likes returns the like counter target for n likes.
// "likes 1" must not match "likes 12".
func Likes(n int) Target {
	return TextPattern(regexp.MustCompile(fmt.Sprintf(`likes %d(\D|$)`, n)))
}

// LikesLocator resolves the counter showing n likes inside this entry
func (e *BlogEntry) LikesLocator(n int) playwright.Locator {
	return Likes(n).Within(e.container())
}

// WaitForLikes blocks until the entry shows n likes
func (e *BlogEntry) WaitForLikes(n int) error {
	if err := e.LikesLocator(n).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("blog %q: %s never shown: %w", e.title, Likes(n), err)
	}
	return nil
}

// LikeTimes likes the blog n times starting from the count from.
// Each click waits for the counter to advance by one before the next.
func (e *BlogEntry) LikeTimes(from, n int) error {
	for i := 1; i <= n; i++ {
		if err := e.Like(); err != nil {
			return err
		}
		if err := e.WaitForLikes(from + i); err != nil {
			return err
		}
	}
	return nil
}

// RemoveButton resolves the delete control inside this entry
func (e *BlogEntry) RemoveButton() playwright.Locator {
	return RemoveButton.Within(e.container())
}

// Remove clicks the delete control and waits for the confirmation dialog it
// raises, returning the dialog message. The page's DialogPolicy decides whether
// the confirmation is accepted.
func (e *BlogEntry) Remove() (string, error) {
	event, err := e.page.ExpectEvent("dialog", func() error {
		return e.RemoveButton().Click()
	})
	if err != nil {
		return "", fmt.Errorf("blog %q: %s raised no confirmation: %w", e.title, RemoveButton, err)
	}
	dialog, ok := event.(playwright.Dialog)
	if !ok {
		return "", fmt.Errorf("blog %q: unexpected dialog event %T", e.title, event)
	}
	return dialog.Message(), nil
}
