package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// E2EConfig holds configuration for running scenarios against the blog app
type E2EConfig struct {
	BaseURL      string
	APIURL       string
	Browser      string
	Headless     bool
	SlowMo       time.Duration
	Timeout      time.Duration
	FixturesPath string
}

// LoadE2EConfig loads end-to-end configuration from environment variables
func LoadE2EConfig(getenv func(string) string) (*E2EConfig, error) {
	config := &E2EConfig{
		BaseURL:      strings.TrimSuffix(getenv("BLOG_BASE_URL"), "/"),
		APIURL:       strings.TrimSuffix(getenv("BLOG_API_URL"), "/"),
		Browser:      strings.ToLower(getenv("E2E_BROWSER")),
		Headless:     true,
		Timeout:      5 * time.Second,
		FixturesPath: getenv("E2E_FIXTURES"),
	}

	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:5173" // Default to the Vite dev server
	}
	if err := validateHTTPURL(config.BaseURL); err != nil {
		return nil, fmt.Errorf("BLOG_BASE_URL is invalid: %w", err)
	}

	// API shares the UI origin unless told otherwise
	if config.APIURL == "" {
		config.APIURL = config.BaseURL
	}
	if err := validateHTTPURL(config.APIURL); err != nil {
		return nil, fmt.Errorf("BLOG_API_URL is invalid: %w", err)
	}

	switch config.Browser {
	case "":
		config.Browser = BrowserChromium
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return nil, fmt.Errorf("E2E_BROWSER must be one of %s, %s, %s: got %q",
			BrowserChromium, BrowserFirefox, BrowserWebKit, config.Browser)
	}

	if v := getenv("E2E_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("E2E_HEADLESS is invalid: %w", err)
		}
		config.Headless = headless
	}

	if v := getenv("E2E_SLOWMO_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("E2E_SLOWMO_MS must be a non-negative integer: got %q", v)
		}
		config.SlowMo = time.Duration(ms) * time.Millisecond
	}

	if v := getenv("E2E_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("E2E_TIMEOUT is invalid: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("E2E_TIMEOUT must be positive: got %s", timeout)
		}
		config.Timeout = timeout
	}

	return config, nil
}

// validateHTTPURL accepts only absolute http(s) URLs with a host
func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// TimeoutMillis returns the timeout in the unit playwright expects
func (c *E2EConfig) TimeoutMillis() float64 {
	return float64(c.Timeout / time.Millisecond)
}

// SlowMoMillis returns the slow-mo delay in the unit playwright expects
func (c *E2EConfig) SlowMoMillis() float64 {
	return float64(c.SlowMo / time.Millisecond)
}
