// Package session owns the authenticated identity: a durable single-record
// store plus a process-wide provider with an explicit hydrate/login/logout
// lifecycle. The provider is the sole authorization signal in the client;
// screens gate on it and never on server responses.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
)

// Store persists at most one identity record.
//
// Contract:
//   - Load returns (nil, nil) when no record exists. A record that cannot be
//     parsed is discarded and also reported as (nil, nil); corruption is
//     never surfaced to the user.
//   - Save replaces the record unconditionally.
//   - Clear removes the record; clearing an absent record is a no-op.
type Store interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, identity *models.User) error
	Clear(ctx context.Context) error
}

// FileStore keeps the identity as one JSON document on disk, the file-system
// analogue of a browser's localStorage record.
type FileStore struct {
	path string
}

// NewFileStore builds a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the platform-default session file location under the
// user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "blogsite", "user.json"), nil
}

func (s *FileStore) Load(ctx context.Context) (*models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}

	var identity models.User
	if err := json.Unmarshal(data, &identity); err != nil {
		// Malformed record: drop it and report the logged-out state.
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &identity, nil
}

func (s *FileStore) Save(ctx context.Context, identity *models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
