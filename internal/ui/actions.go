package ui

import (
	"fmt"

	"github.com/bloglist/e2etest/internal/models"
	"github.com/playwright-community/playwright-go"
)

// Click activates the target once it is actionable
func Click(page playwright.Page, target Target) error {
	if err := target.Resolve(page).Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", target, err)
	}
	return nil
}

// Fill types value into the target input, replacing its content
func Fill(page playwright.Page, target Target, value string) error {
	if err := target.Resolve(page).Fill(value); err != nil {
		return fmt.Errorf("failed to fill %s: %w", target, err)
	}
	return nil
}

// LoginWith fills the login form and submits it
func LoginWith(page playwright.Page, username, password string) error {
	if err := Fill(page, UsernameField, username); err != nil {
		return err
	}
	if err := Fill(page, PasswordField, password); err != nil {
		return err
	}
	return Click(page, LoginButton)
}

// LoginAs logs in with a seeded account
func LoginAs(page playwright.Page, user models.User) error {
	return LoginWith(page, user.Username, user.Password)
}

// Logout ends the current session
func Logout(page playwright.Page) error {
	return Click(page, LogoutButton)
}

// CreateBlog opens the new blog form, fills it and submits it
func CreateBlog(page playwright.Page, blog models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}

	if err := Click(page, NewBlogButton); err != nil {
		return err
	}
	if err := Fill(page, TitleInput, blog.Title); err != nil {
		return err
	}
	if err := Fill(page, AuthorInput, blog.Author); err != nil {
		return err
	}
	if err := Fill(page, URLInput, blog.URL); err != nil {
		return err
	}
	return Click(page, CreateButton)
}

// WaitVisible blocks until the target is visible
func WaitVisible(page playwright.Page, target Target) error {
	if err := target.Resolve(page).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("%s never became visible: %w", target, err)
	}
	return nil
}
