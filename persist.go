package variabledb

import (
	"errors"
	"fmt"
	"io/fs"
)

// Save encodes the current entries through the codec and hands the blob to
// the backend, replacing any previous snapshot wholesale. Codec failures are
// classified as ErrSerialize; backend failures carry the operation and path.
func (s *Store) Save() error {
	data, err := s.codec.Marshal(s.entries)
	if err != nil {
		return s.fail("save", fmt.Errorf("%w: %v", ErrSerialize, err))
	}
	if err := s.backend.Save(data); err != nil {
		return s.fail("save", fmt.Errorf("save %s: %w", s.path, err))
	}
	s.dirty = false
	s.logger.Info("snapshot saved", "store", s.id, "path", s.path, "codec", s.codec.Name(), "entries", len(s.entries), "bytes", len(data))
	return nil
}

// Load replaces the in-memory entries with the decoded snapshot and writes
// every loaded pair into the binding environment, overwriting bindings of
// the same name. A backend without a snapshot yet is not an error; the store
// stays as it is. Undecodable blobs are classified as ErrDeserialize.
func (s *Store) Load() error {
	data, err := s.backend.Load()
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no snapshot to load", "store", s.id, "path", s.path)
		return nil
	}
	if err != nil {
		return s.fail("load", fmt.Errorf("load %s: %w", s.path, err))
	}

	entries := make(map[string]any)
	if err := s.codec.Unmarshal(data, &entries); err != nil {
		return s.fail("load", fmt.Errorf("%w: %v", ErrDeserialize, err))
	}

	s.entries = entries
	for name, value := range entries {
		s.env[name] = value
	}
	s.dirty = false

	s.logger.Info("snapshot loaded", "store", s.id, "path", s.path, "entries", len(entries))

	return nil
}

// Close persists the entries one final time and releases the backend. It is
// the scope-exit half of Open: the save runs even when the store is clean,
// keeping the always-save contract of scoped use. A failed save still
// releases the backend; the save error wins.
func (s *Store) Close() error {
	saveErr := s.Save()
	if err := s.backend.Close(); err != nil && saveErr == nil {
		return err
	}
	return saveErr
}
