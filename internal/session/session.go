// Package session owns the authenticated identity for one run of the console.
// Login populates it, logout clears it, and startup rehydrates it once from
// the persisted file. Nothing else mutates it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pqrsdesk/omnidesk/internal/config"
	"github.com/pqrsdesk/omnidesk/internal/models"
)

type state struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Manager struct {
	mu   sync.Mutex
	file string
	cur  state
}

func NewManager(cfg *config.Config) (*Manager, error) {
	file := cfg.Session.File
	if file == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session dir: %w", err)
		}
		file = filepath.Join(dir, "omnidesk", "session.json")
	}
	return &Manager{file: file}, nil
}

// Load rehydrates the session from disk. A missing file is not an error; the
// manager just stays unauthenticated.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	m.cur = st
	return nil
}

// Set stores the freshly issued token and user and persists them.
func (m *Manager) Set(token string, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cur = state{Token: token, User: user}
	return m.persist()
}

// Clear drops the session both in memory and on disk.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cur = state{}
	if err := os.Remove(m.file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur.Token
}

func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur.User
}

func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

func (m *Manager) persist() error {
	if err := os.MkdirAll(filepath.Dir(m.file), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(m.cur, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(m.file, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
