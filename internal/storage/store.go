package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"workbench/internal/shell"
)

const (
	// StateDirEnv is the env var override for ~/.workbench (for testing).
	StateDirEnv = "WORKBENCH_STATE_DIR"
	// DefaultStateBase is the default state directory under the user's home.
	DefaultStateBase = ".workbench"
	layoutFile       = "layout.json"
)

// Store reads and writes layout snapshots under a state directory.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the user's home + DefaultStateBase,
// or at the path in WORKBENCH_STATE_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(StateDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultStateBase)
	}
	return &Store{baseDir: base}, nil
}

// NewStoreAt creates a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{baseDir: dir}
}

// BaseDir returns the state directory.
func (s *Store) BaseDir() string { return s.baseDir }

// LayoutPath returns the layout snapshot file path.
func (s *Store) LayoutPath() string { return filepath.Join(s.baseDir, layoutFile) }

// SaveLayout serializes and writes d.
func (s *Store) SaveLayout(d shell.LayoutData) error {
	data, err := Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize layout: %w", err)
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	if err := os.WriteFile(s.LayoutPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}

// LoadLayout reads and resolves the persisted layout. The second return is
// false when no snapshot exists yet.
func (s *Store) LoadLayout(reg *Registry) (shell.LayoutData, bool, error) {
	data, err := os.ReadFile(s.LayoutPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return shell.LayoutData{}, false, nil
		}
		return shell.LayoutData{}, false, fmt.Errorf("failed to read layout: %w", err)
	}
	d, err := Unmarshal(data, reg)
	if err != nil {
		return shell.LayoutData{}, false, err
	}
	return d, true, nil
}

// ResetLayout deletes the persisted snapshot, if any.
func (s *Store) ResetLayout() error {
	err := os.Remove(s.LayoutPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
