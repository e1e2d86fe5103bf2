package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bloglist/e2etest/internal/browser"
	"github.com/bloglist/e2etest/internal/config"
	"github.com/bloglist/e2etest/internal/fixtures"
	"github.com/bloglist/e2etest/internal/testapi"
	"github.com/bloglist/e2etest/internal/ui"
)

// Dependencies holds everything the commands need
type Dependencies struct {
	Config   *config.E2EConfig
	Fixtures *fixtures.Set
	API      testapi.Client
	// Launch starts a browser session, replaced in tests
	Launch func(*config.E2EConfig) (BrowserSession, error)
}

// BrowserSession is the part of browser.Session the smoke check uses
type BrowserSession interface {
	NewPage(policy *ui.DialogPolicy) (*browser.Page, error)
	Close() error
}

// LaunchBrowser adapts browser.Launch to Dependencies.Launch
func LaunchBrowser(cfg *config.E2EConfig) (BrowserSession, error) {
	session, err := browser.Launch(cfg)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// BuildDependencies loads configuration and fixtures and creates the API client
func BuildDependencies(getenv func(string) string) (Dependencies, error) {
	var deps Dependencies

	cfg, err := config.LoadE2EConfig(getenv)
	if err != nil {
		return deps, fmt.Errorf("invalid configuration: %w", err)
	}
	deps.Config = cfg

	set, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		return deps, err
	}
	deps.Fixtures = set

	deps.API = testapi.NewClient(cfg.APIURL, nil)
	deps.Launch = LaunchBrowser

	return deps, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM, bounded by the
// configured timeout when timeout is true
func SignalContext(cfg *config.E2EConfig, timeout bool) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if !timeout {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// RunReset clears the backend and seeds the fixture users
func RunReset(ctx context.Context, deps Dependencies) error {
	log.Printf("Resetting backend at %s", deps.Config.APIURL)
	if err := testapi.Seed(ctx, deps.API, deps.Fixtures.Users...); err != nil {
		if testapi.IsConflict(err) {
			return fmt.Errorf("%w (did the reset endpoint clear existing users?)", err)
		}
		return err
	}
	for _, user := range deps.Fixtures.Users {
		log.Printf("Seeded user %s", user.Username)
	}
	return nil
}

// RunSmoke resets the backend, opens the app root and checks the login form.
// The reset is bounded by the configured timeout, the browser steps by playwright's.
func RunSmoke(ctx context.Context, deps Dependencies) error {
	resetCtx, cancel := context.WithTimeout(ctx, deps.Config.Timeout)
	defer cancel()
	if err := RunReset(resetCtx, deps); err != nil {
		return err
	}

	session, err := deps.Launch(deps.Config)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("Failed to close browser session: %v", err)
		}
	}()

	page, err := session.NewPage(nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := page.Release(); err != nil {
			log.Printf("Failed to close page: %v", err)
		}
	}()

	if _, err := page.Goto("/"); err != nil {
		return fmt.Errorf("failed to open %s: %w", deps.Config.BaseURL, err)
	}

	if err := ui.WaitVisible(page, ui.LoginForm); err != nil {
		return fmt.Errorf("smoke check failed: %s", ui.Describe(err))
	}

	log.Printf("Smoke check passed: %s is visible at %s", ui.LoginForm.Name, deps.Config.BaseURL)
	return nil
}

// RunInstall downloads the browser engines
func RunInstall(browsers []string) error {
	log.Printf("Installing playwright browsers %v", browsers)
	if err := browser.Install(browsers...); err != nil {
		return err
	}
	log.Println("Browsers installed")
	return nil
}
