// Package browser owns the Playwright driver and hands out isolated pages.
package browser

import (
	"errors"
	"fmt"
	"log"

	"github.com/bloglist/e2etest/internal/config"
	"github.com/bloglist/e2etest/internal/ui"
	"github.com/playwright-community/playwright-go"
)

// Session is a running Playwright driver with one launched browser
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	config  *config.E2EConfig
}

// Page is a page in its own browser context, answered by a DialogPolicy
type Page struct {
	playwright.Page
	Dialogs *ui.DialogPolicy
}

// Release closes the page and its context
func (p *Page) Release() error {
	return errors.Join(p.Page.Close(), p.Page.Context().Close())
}

// Launch starts Playwright and the browser engine named in cfg
func Launch(cfg *config.E2EConfig) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	engine, err := browserType(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	browser, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMillis()),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", cfg.Browser, err)
	}

	log.Printf("Launched %s (headless=%t) against %s", cfg.Browser, cfg.Headless, cfg.BaseURL)

	return &Session{pw: pw, browser: browser, config: cfg}, nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

// NewContext creates an isolated context with its own cookies and storage.
// Relative URLs resolve against the configured base URL.
func (s *Session) NewContext() (playwright.BrowserContext, error) {
	ctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(s.config.BaseURL),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(s.config.TimeoutMillis())
	ctx.SetDefaultNavigationTimeout(s.config.TimeoutMillis())
	return ctx, nil
}

// NewPage creates a page in a fresh context with policy answering its dialogs.
// A nil policy accepts every dialog.
func (s *Session) NewPage(policy *ui.DialogPolicy) (*Page, error) {
	ctx, err := s.NewContext()
	if err != nil {
		return nil, err
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	if policy == nil {
		policy = ui.NewDialogPolicy()
	}
	policy.Install(page)

	return &Page{Page: page, Dialogs: policy}, nil
}

// Expect returns assertions that poll up to the configured timeout
func (s *Session) Expect() playwright.PlaywrightAssertions {
	return playwright.NewPlaywrightAssertions(s.config.TimeoutMillis())
}

// Config returns the configuration the session was launched with
func (s *Session) Config() *config.E2EConfig {
	return s.config
}

// Close releases the browser and stops the driver
func (s *Session) Close() error {
	var errs []error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Install downloads the driver and the given browser engines
func Install(browsers ...string) error {
	if len(browsers) == 0 {
		browsers = []string{config.BrowserChromium}
	}
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("could not install playwright browsers %v: %w", browsers, err)
	}
	return nil
}
