package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqrsdesk/omnidesk/internal/config"
	"github.com/pqrsdesk/omnidesk/internal/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.File = filepath.Join(t.TempDir(), "session.json")
	mgr, err := NewManager(cfg)
	require.NoError(t, err)
	return mgr
}

func TestSessionRoundtrip(t *testing.T) {
	t.Parallel()

	mgr := newTestManager(t)
	require.NoError(t, mgr.Load())
	assert.False(t, mgr.Authenticated())

	user := &models.User{ID: 7, Username: "agent7"}
	require.NoError(t, mgr.Set("tok-123", user))
	assert.True(t, mgr.Authenticated())
	assert.Equal(t, "tok-123", mgr.Token())

	// a fresh manager pointed at the same file rehydrates the session
	cfg := &config.Config{}
	cfg.Session.File = mgrFile(mgr)
	fresh, err := NewManager(cfg)
	require.NoError(t, err)
	require.NoError(t, fresh.Load())
	assert.Equal(t, "tok-123", fresh.Token())
	require.NotNil(t, fresh.User())
	assert.Equal(t, "agent7", fresh.User().Username)
}

func TestSessionClear(t *testing.T) {
	t.Parallel()

	mgr := newTestManager(t)
	require.NoError(t, mgr.Set("tok", &models.User{ID: 1}))
	require.NoError(t, mgr.Clear())

	assert.False(t, mgr.Authenticated())
	assert.Nil(t, mgr.User())
	_, err := os.Stat(mgrFile(mgr))
	assert.True(t, os.IsNotExist(err))

	// clearing an already-clean session is fine
	require.NoError(t, mgr.Clear())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	mgr := newTestManager(t)
	require.NoError(t, mgr.Load())
	assert.Empty(t, mgr.Token())
}

func mgrFile(m *Manager) string {
	return m.file
}
