package storage

import (
	"os"
	"path/filepath"
)

// File stores the snapshot as a single flat file, creating parent
// directories on demand. Saves overwrite the file in place.
type File struct {
	path string
}

// NewFile returns a file backend writing to path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load implements Backend. A missing file surfaces as an *os.PathError
// wrapping fs.ErrNotExist.
func (f *File) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

// Save implements Backend.
func (f *File) Save(data []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o644)
}

// Close implements Backend. The file is opened per operation, so there is
// nothing to release.
func (f *File) Close() error { return nil }

// Path returns the file location.
func (f *File) Path() string { return f.path }
