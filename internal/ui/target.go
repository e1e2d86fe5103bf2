// Package ui drives the blog app's web interface.
//
// Elements are described by Targets rather than stored locators. A Target is
// resolved again for every interaction because the list re-renders after each
// like, create and delete.
package ui

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// Strategy selects how a Target is located on the page
type Strategy int

const (
	ByTestID Strategy = iota
	ByRole
	ByPlaceholder
	ByCSS
	ByText
)

func (s Strategy) String() string {
	switch s {
	case ByTestID:
		return "test id"
	case ByRole:
		return "role"
	case ByPlaceholder:
		return "placeholder"
	case ByCSS:
		return "css"
	case ByText:
		return "text"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Target maps a logical UI element to the way it is found
type Target struct {
	Name     string
	Strategy Strategy
	// Value is the marker, accessible name, placeholder, selector or text.
	// Pattern takes precedence when set.
	Value   string
	Pattern *regexp.Regexp
	Role    playwright.AriaRole
	Exact   bool
}

// UI targets of the blog app
var (
	LoginForm = Target{Name: "login form", Strategy: ByTestID, Value: "loginForm"}

	UsernameField = Target{Name: "username field", Strategy: ByTestID, Pattern: regexp.MustCompile(`(?i)username`)}
	PasswordField = Target{Name: "password field", Strategy: ByTestID, Pattern: regexp.MustCompile(`(?i)password`)}
	LoginButton   = button("login button", "login")
	LogoutButton  = button("log out button", "log out")

	ErrorNotification = Target{Name: "error notification", Strategy: ByCSS, Value: ".error"}

	NewBlogButton = button("create new blog button", "create new blog")
	TitleInput    = Target{Name: "title input", Strategy: ByPlaceholder, Value: "Enter blog title"}
	AuthorInput   = Target{Name: "author input", Strategy: ByPlaceholder, Value: "Enter blog author"}
	URLInput      = Target{Name: "url input", Strategy: ByPlaceholder, Value: "Enter blog URL"}
	CreateButton  = button("create button", "create")

	ViewButton   = button("view button", "view")
	LikeButton   = button("like button", "like")
	RemoveButton = button("remove button", "remove")
)

func button(name, label string) Target {
	return Target{Name: name, Strategy: ByRole, Role: *playwright.AriaRoleButton, Value: label}
}

// Text returns a target for visible text. With exact set the whole
// element text must match, otherwise a case-insensitive substring does.
func Text(text string, exact bool) Target {
	return Target{Name: fmt.Sprintf("text %q", text), Strategy: ByText, Value: text, Exact: exact}
}

// TextPattern returns a target for visible text matching re
func TextPattern(re *regexp.Regexp) Target {
	return Target{Name: fmt.Sprintf("text /%s/", re), Strategy: ByText, Pattern: re}
}

func (t Target) String() string {
	how := t.Value
	if t.Pattern != nil {
		how = "/" + t.Pattern.String() + "/"
	}
	return fmt.Sprintf("%s (%s %s)", t.Name, t.Strategy, how)
}

func (t Target) match() interface{} {
	if t.Pattern != nil {
		return t.Pattern
	}
	return t.Value
}

// Resolve locates the target anywhere on the page
func (t Target) Resolve(page playwright.Page) playwright.Locator {
	return t.Within(page.Locator(":root"))
}

// Within locates the target inside scope
func (t Target) Within(scope playwright.Locator) playwright.Locator {
	switch t.Strategy {
	case ByTestID:
		return scope.GetByTestId(t.match())
	case ByRole:
		return scope.GetByRole(t.Role, playwright.LocatorGetByRoleOptions{
			Name:  t.match(),
			Exact: playwright.Bool(t.Exact),
		})
	case ByPlaceholder:
		return scope.GetByPlaceholder(t.match(), playwright.LocatorGetByPlaceholderOptions{
			Exact: playwright.Bool(t.Exact),
		})
	case ByText:
		return scope.GetByText(t.match(), playwright.LocatorGetByTextOptions{
			Exact: playwright.Bool(t.Exact),
		})
	default:
		return scope.Locator(t.Value)
	}
}
