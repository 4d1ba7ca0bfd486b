package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.NoError(t, cfg.Game.Validate())
}

func TestResolveHostKeyCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKey(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewSSHServerWithoutStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	// The database directory cannot be created under a regular file.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	cfg.DBPath = filepath.Join(blocker, "scores.db")

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Nil(t, srv.store)
	assert.Equal(t, 0, srv.ActiveSessions())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}
