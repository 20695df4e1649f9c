package users

import (
	"context"
	"fmt"
	"os"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/devworkspace-io/workspace-secrets/pkg/errors"
)

// directoryFile is the on-disk shape of a user directory.
type directoryFile struct {
	Users []directoryEntry `json:"users"`
}

type directoryEntry struct {
	User        `json:",inline"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// Directory is an in-memory user directory, optionally seeded from a YAML
// file. It implements both Service and PreferenceService and accepts new
// registrations at runtime.
type Directory struct {
	mu      sync.RWMutex
	entries map[string]directoryEntry
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{entries: make(map[string]directoryEntry)}
}

// LoadDirectory creates a directory seeded from the YAML file at path.
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read users file %s: %w", path, err)
	}

	var file directoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}

	d := NewDirectory()
	for _, entry := range file.Users {
		if entry.ID == "" {
			return nil, fmt.Errorf("users file %s contains an entry without an id", path)
		}
		d.entries[entry.ID] = entry
	}
	return d, nil
}

// GetByID implements Service.
func (d *Directory) GetByID(_ context.Context, id string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.entries[id]
	if !ok {
		return nil, errors.NewNotFoundError("user "+id+" not found", nil)
	}
	user := entry.User
	return &user, nil
}

// Find implements PreferenceService.
func (d *Directory) Find(_ context.Context, userID string) (map[string]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	preferences := make(map[string]string)
	entry, ok := d.entries[userID]
	if !ok {
		return preferences, nil
	}
	for k, v := range entry.Preferences {
		preferences[k] = v
	}
	return preferences, nil
}

// Register adds or replaces a user record and its preferences.
func (d *Directory) Register(_ context.Context, user User, preferences map[string]string) error {
	if user.ID == "" {
		return errors.NewServerError("cannot register a user without an id", nil)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[user.ID] = directoryEntry{User: user, Preferences: preferences}
	return nil
}
