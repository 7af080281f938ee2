package storage

// Backend persists one opaque snapshot blob. Save replaces the previous blob
// wholesale; Load reports an error wrapping fs.ErrNotExist while no snapshot
// exists yet, which callers treat as "nothing to load" rather than a
// failure.
type Backend interface {
	// Load returns the current snapshot blob.
	Load() ([]byte, error)

	// Save replaces the snapshot blob.
	Save(data []byte) error

	// Close releases any resources held by the backend.
	Close() error
}
