package testapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bloglist/e2etest/internal/models"
	"github.com/google/uuid"
)

// Client prepares backend state for a scenario
type Client interface {
	Reset(ctx context.Context) error
	CreateUser(ctx context.Context, user models.User) error
}

// HTTPClient implements Client against the blog backend's REST API
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a testing API client for the backend at baseURL
func NewClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// APIError is returned when the backend answers with a non-2xx status
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Reset clears all application state
func (c *HTTPClient) Reset(ctx context.Context) error {
	return c.post(ctx, "reset", "/api/testing/reset", nil)
}

// CreateUser registers a user account
func (c *HTTPClient) CreateUser(ctx context.Context, user models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return c.post(ctx, "create user", "/api/users", user)
}

// post sends a JSON POST and discards the response body on success
func (c *HTTPClient) post(ctx context.Context, op, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		reqBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		body = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: failed to send request: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Testing API error on %s (status %d, request %s): %s",
			path, resp.StatusCode, req.Header.Get("X-Request-ID"), string(respBody))
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return nil
}
