package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ErrCorruptBestTime is returned when the best-time file exists but does
// not hold a positive integer.
var ErrCorruptBestTime = errors.New("storage: corrupt best time file")

// BestTimeFile persists the best completion time (in seconds) as a text
// file holding a single integer. Reads and writes each open and close the
// file within one call; the mutex serialises sessions sharing a file.
type BestTimeFile struct {
	path string
	mu   sync.Mutex
}

// NewBestTimeFile returns a store for the given path. A leading ~ is
// expanded and the parent directory is created.
func NewBestTimeFile(path string) (*BestTimeFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return &BestTimeFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *BestTimeFile) Path() string {
	return f.path
}

// Load reads the stored best time. A missing file yields an error wrapping
// os.ErrNotExist; unparsable content yields ErrCorruptBestTime.
func (f *BestTimeFile) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best time: %w", err)
	}

	secs, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCorruptBestTime, strings.TrimSpace(string(data)))
	}
	return secs, nil
}

// Save overwrites the stored best time. The value is written to a
// temporary file first and renamed into place.
func (f *BestTimeFile) Save(secs int) error {
	if secs < 0 {
		return fmt.Errorf("storage: negative best time %d", secs)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(secs)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write best time: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		//nolint:errcheck // Best-effort cleanup
		os.Remove(tmp)
		return fmt.Errorf("storage: cannot replace best time: %w", err)
	}
	return nil
}

// Reset deletes the stored best time. Deleting a missing file is not an error.
func (f *BestTimeFile) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot reset best time: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
