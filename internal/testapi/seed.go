package testapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bloglist/e2etest/internal/models"
)

// Seed resets the backend and then creates each user in order.
// It stops at the first failure.
func Seed(ctx context.Context, client Client, users ...models.User) error {
	if err := client.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset backend: %w", err)
	}
	for _, user := range users {
		if err := client.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Username, err)
		}
	}
	return nil
}

// IsConflict reports whether err means the username is already taken.
// The backend answers 400 with a uniqueness message, some deployments use 409.
func IsConflict(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.StatusCode {
	case http.StatusConflict:
		return true
	case http.StatusBadRequest:
		return strings.Contains(strings.ToLower(apiErr.Body), "unique")
	}
	return false
}
