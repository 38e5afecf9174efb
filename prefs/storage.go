package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/fontpref/logging"
)

// MemoryStorage keeps preferences in memory. The zero value is ready to use.
type MemoryStorage struct {
	mu    sync.Mutex
	prefs Preferences
	saves int
}

// NewMemoryStorage returns a MemoryStorage holding initial.
func NewMemoryStorage(initial Preferences) *MemoryStorage {
	return &MemoryStorage{prefs: initial.Clone()}
}

// Load implements Storage.
func (m *MemoryStorage) Load() (Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs.Clone(), nil
}

// Save implements Storage.
func (m *MemoryStorage) Save(p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = p.Clone()
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStorage) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FileStorage keeps preferences in a YAML file.
type FileStorage struct {
	path string
}

// NewFileStorage returns a FileStorage for the file at path. The file and its
// directory are created on the first Save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultPath returns the preferences file under the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "fontpref", "prefs.yaml"), nil
}

// Path returns the file path.
func (f *FileStorage) Path() string {
	return f.path
}

// Load implements Storage. A missing file yields empty preferences.
func (f *FileStorage) Load() (Preferences, error) {
	var p Preferences

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read %s: %w", f.path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return p, nil
}

// Save implements Storage. The file is replaced atomically.
func (f *FileStorage) Save(p Preferences) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	logging.Logger().Debug("preferences saved", "path", f.path, "bytes", len(data))
	return nil
}
