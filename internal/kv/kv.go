// Package kv persists small named slots (recent searches, the watchlist,
// preferences) as individual TOML files.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// ErrNotFound is returned by Get when a slot has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store reads and writes named slots. Values must encode as a TOML table,
// i.e. a struct or map.
type Store interface {
	Get(key string, dest any) error
	Put(key string, value any) error
	Delete(key string) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStore keeps each slot at <dir>/<key>.toml on an afero filesystem.
type FileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// Ensure FileStore implements Store at compile time.
var _ Store = (*FileStore)(nil)

// NewFileStore returns a store rooted at dir. A nil fs uses the OS filesystem.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs, dir: dir}
}

// Dir returns the directory holding the slot files.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get decodes the slot into dest.
func (s *FileStore) Get(key string, dest any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := toml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Put overwrites the slot. The file is written beside its final name and
// renamed into place so a crash never leaves a half-written slot.
func (s *FileStore) Put(key string, value any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (s *FileStore) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".toml"), nil
}
