// Package users defines the user and preference services consumed by the
// namespace provisioner when building user information secrets.
package users

import (
	"context"
)

// User is a registered user of the workspace platform.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Service looks up user records by id.
type Service interface {
	// GetByID returns the user with the given id. It fails with a not_found
	// error when no such user exists and a server error on lookup failure.
	GetByID(ctx context.Context, id string) (*User, error)
}

// PreferenceService looks up per-user preference maps.
type PreferenceService interface {
	// Find returns the preferences stored for the given user id. A user with
	// no stored preferences yields an empty map, not an error.
	Find(ctx context.Context, userID string) (map[string]string, error)
}
