//go:build e2e

package e2e

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/bloglist/e2etest/internal/browser"
	"github.com/bloglist/e2etest/internal/config"
	"github.com/bloglist/e2etest/internal/fixtures"
	"github.com/bloglist/e2etest/internal/models"
	"github.com/bloglist/e2etest/internal/testapi"
	"github.com/bloglist/e2etest/internal/ui"
	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
)

var (
	cfg     *config.E2EConfig
	seed    *fixtures.Set
	api     *testapi.HTTPClient
	session *browser.Session
)

// TestMain launches one browser for the whole suite.
// The blog app must already be running at BLOG_BASE_URL with its testing API enabled.
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	if err := godotenv.Load("../.env"); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	var err error
	cfg, err = config.LoadE2EConfig(os.Getenv)
	if err != nil {
		panic(err)
	}

	// E2E_FIXTURES is relative to the module root, tests run from e2e/
	seed, err = fixtures.Load(fixtures.Resolve(cfg.FixturesPath, ".."))
	if err != nil {
		panic(err)
	}

	api = testapi.NewClient(cfg.APIURL, nil)

	// Browsers are installed with: go run ./cmd/bloglist-e2e install
	session, err = browser.Launch(cfg)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("Failed to close browser session: %v", err)
		}
	}()

	return m.Run()
}

// scenario is one independent test case against a freshly reset backend
type scenario struct {
	t      *testing.T
	page   *browser.Page
	expect playwright.PlaywrightAssertions
}

// newScenario resets the backend, seeds the fixture users and opens the app root
// in a new browser context. Any setup failure aborts the test before the UI is touched.
func newScenario(t *testing.T) *scenario {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := testapi.Seed(ctx, api, seed.Users...); err != nil {
		t.Fatalf("Failed to prepare backend: %v", err)
	}

	page, err := session.NewPage(ui.NewDialogPolicy())
	if err != nil {
		t.Fatalf("Failed to open page: %v", err)
	}
	t.Cleanup(func() {
		if err := page.Release(); err != nil {
			t.Logf("Warning: failed to close page: %v", err)
		}
	})

	if _, err := page.Goto("/"); err != nil {
		t.Fatalf("Failed to navigate to %s: %v", cfg.BaseURL, err)
	}

	return &scenario{t: t, page: page, expect: session.Expect()}
}

// must fails the scenario when a step returns an error
func (s *scenario) must(step string, err error) {
	s.t.Helper()
	if err != nil {
		s.t.Fatalf("%s: %s", step, ui.Describe(err))
	}
}

// loginAs logs in with a seeded account and waits for the confirmation
func (s *scenario) loginAs(username string) {
	s.t.Helper()
	user := s.user(username)
	s.must("log in as "+username, ui.LoginAs(s.page, user))
	s.visible(ui.Text(user.LoggedInText(), false))
}

// remove clicks the entry's delete control and waits for its confirmation dialog
func (s *scenario) remove(entry *ui.BlogEntry) {
	s.t.Helper()
	message, err := entry.Remove()
	if err != nil {
		s.t.Fatalf("remove blog: %s", ui.Describe(err))
	}
	s.t.Logf("Confirmation: %s", message)
}

// user returns a seeded account or fails the scenario
func (s *scenario) user(username string) models.User {
	s.t.Helper()
	user, ok := seed.User(username)
	if !ok {
		s.t.Fatalf("Fixtures do not seed user %s", username)
	}
	return user
}

// blog returns the i-th blog fixture or fails the scenario
func (s *scenario) blog(i int) models.Blog {
	s.t.Helper()
	blog, err := seed.Blog(i)
	if err != nil {
		s.t.Fatalf("Missing blog fixture: %v", err)
	}
	return blog
}

// visible asserts the target becomes visible within the timeout
func (s *scenario) visible(target ui.Target) {
	s.t.Helper()
	if err := s.expect.Locator(target.Resolve(s.page)).ToBeVisible(); err != nil {
		s.t.Fatalf("Expected %s to be visible: %s", target, ui.Describe(err))
	}
}

// hidden asserts the target is not visible within the timeout
func (s *scenario) hidden(target ui.Target) {
	s.t.Helper()
	if err := s.expect.Locator(target.Resolve(s.page)).Not().ToBeVisible(); err != nil {
		s.t.Errorf("Expected %s not to be visible: %s", target, ui.Describe(err))
	}
}
