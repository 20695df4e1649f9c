package users

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devworkspace-io/workspace-secrets/pkg/errors"
)

const testDirectoryYAML = `users:
  - id: u1
    name: alice
    email: alice@example.com
    preferences:
      theme: dark
      editor: vim
  - id: u2
    name: bob
    email: bob@example.com
`

func writeDirectoryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDirectory(t *testing.T) {
	t.Parallel()

	directory, err := LoadDirectory(writeDirectoryFile(t, testDirectoryYAML))
	require.NoError(t, err)

	user, err := directory.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestLoadDirectoryRejectsMissingID(t *testing.T) {
	t.Parallel()

	_, err := LoadDirectory(writeDirectoryFile(t, "users:\n  - name: nameless\n"))
	assert.Error(t, err)
}

func TestLoadDirectoryMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadDirectory(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	directory := NewDirectory()
	_, err := directory.GetByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFindPreferences(t *testing.T) {
	t.Parallel()

	directory, err := LoadDirectory(writeDirectoryFile(t, testDirectoryYAML))
	require.NoError(t, err)
	ctx := context.Background()

	preferences, err := directory.Find(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "dark", "editor": "vim"}, preferences)

	// A user without stored preferences yields an empty map, not an error.
	preferences, err = directory.Find(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, preferences)

	// Same for an unknown user.
	preferences, err = directory.Find(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, preferences)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	directory := NewDirectory()
	ctx := context.Background()

	err := directory.Register(ctx, User{ID: "u3", Name: "carol"}, map[string]string{"shell": "zsh"})
	require.NoError(t, err)

	user, err := directory.GetByID(ctx, "u3")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Name)

	preferences, err := directory.Find(ctx, "u3")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"shell": "zsh"}, preferences)
}

func TestRegisterRequiresID(t *testing.T) {
	t.Parallel()

	err := NewDirectory().Register(context.Background(), User{Name: "nameless"}, nil)
	assert.Error(t, err)
}
