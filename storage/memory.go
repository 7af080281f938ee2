package storage

import (
	"fmt"
	"io/fs"
)

// Memory keeps the snapshot in process memory, useful for tests, examples
// and throwaway stores. Contents vanish with the process. The blob is copied
// on save and on load to avoid external mutation of the internal buffer.
type Memory struct {
	data  []byte
	saved bool
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Backend.
func (m *Memory) Load() ([]byte, error) {
	if !m.saved {
		return nil, fmt.Errorf("no snapshot: %w", fs.ErrNotExist)
	}
	cp := make([]byte, len(m.data))
	copy(cp, m.data)
	return cp, nil
}

// Save implements Backend.
func (m *Memory) Save(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data = cp
	m.saved = true
	return nil
}

// Close implements Backend.
func (m *Memory) Close() error { return nil }
