package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"ridehub/internal/domain/models"
)

// Only the auth slice is durable. Everything else is volatile and rebuilt
// from fixtures after a reload.
type persistedAuth struct {
	User   *models.Identity `json:"user"`
	Token  string           `json:"token"`
	Status Status           `json:"status"`
}

// SaveAuth writes the whitelisted auth slice to a single file. An empty
// session is persisted too, so sign-out survives a reload.
func (s *Store) SaveAuth(path string) error {
	s.Auth.mu.RLock()
	p := persistedAuth{
		User:   s.Auth.user,
		Token:  s.Auth.token,
		Status: s.Auth.status,
	}
	s.Auth.mu.RUnlock()

	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// LoadAuth rehydrates the auth slice from a prior save. A missing file is not
// an error; a corrupt one is discarded and the slice stays empty.
func (s *Store) LoadAuth(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var p persistedAuth
	if err := json.Unmarshal(b, &p); err != nil {
		return nil
	}
	if p.User == nil || p.Token == "" {
		return nil
	}

	s.Auth.mu.Lock()
	s.Auth.user = p.User
	s.Auth.token = p.Token
	s.Auth.status = p.Status
	s.Auth.mu.Unlock()
	return nil
}
