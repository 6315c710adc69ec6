// Package storage persists named JSON values under a directory, one file
// per key. Writes are atomic (temp file + rename) and guarded by a file
// lock so concurrent tick processes cannot interleave partial writes.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Store manages the persisted files for a data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) valuePath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

// Load reads the value stored under key into out. It returns false with a
// nil error when the key has never been written, so callers can apply
// their own default.
func (s *Store) Load(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.valuePath(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

// Save overwrites the value stored under key with a full serialization of
// value. The previous contents are replaced, not merged.
func (s *Store) Save(key string, value any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.withLock(key, func() error {
		path := s.valuePath(key)

		if existing, err := os.ReadFile(path); err == nil {
			if bytes.Equal(existing, data) {
				return nil
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", key, err)
		}

		tmpFile, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		name := tmpFile.Name()
		_, err = tmpFile.Write(data)
		if err1 := tmpFile.Close(); err1 != nil && err == nil {
			err = err1
		}
		if err != nil {
			os.Remove(name)
			return fmt.Errorf("write temp file: %w", err)
		}

		if err := os.Rename(name, path); err != nil {
			os.Remove(name)
			return fmt.Errorf("rename %s: %w", key, err)
		}
		return nil
	})
}

// withLock executes fn while holding an exclusive lock for the key.
func (s *Store) withLock(key string, fn func() error) error {
	lockFile, err := os.OpenFile(s.lockPath(key), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}
