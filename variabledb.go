// Package variabledb provides a name-keyed variable store: a small
// persistence helper that associates names with runtime values, injects
// stored values back into a caller-provided binding environment, and
// serializes the whole mapping to a single file through a pluggable codec.
// Most applications interact with this package by:
//  1. Creating a Store via New() or Open() with an Env describing the caller's bindings
//  2. Adding values by explicit name (Set) or by identity lookup in the Env (Add)
//  3. Persisting with Save()/Load(), or letting Close() and With() handle both ends
//
// Defaults are safe for local use: a gob codec and a flat-file backend at the
// normalized path. Other setups swap the codec (JSON, YAML) or the backend
// (SQLite, in-memory) through Options without touching calling code.
package variabledb

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avitwil/variabledb/codec"
	"github.com/avitwil/variabledb/logging"
	"github.com/avitwil/variabledb/storage"
)

// Env is the caller-provided binding environment: the set of named values the
// store may infer names from and inject loaded values into. The map stays
// owned by the caller; the store holds a plain reference, reads it during
// name inference, writes into it during Load and never removes bindings.
type Env map[string]any

// FileSuffix is appended to store filenames that do not already carry it.
const FileSuffix = ".db"

// NormalizeFilename returns filename with the FileSuffix appended when absent.
func NormalizeFilename(filename string) string {
	if strings.HasSuffix(filename, FileSuffix) {
		return filename
	}
	return filename + FileSuffix
}

// Options configures a Store instance.
type Options struct {
	// Codec encodes and decodes the whole entry mapping.
	// Defaults to codec.Gob{}, the widest general-purpose encoding.
	Codec codec.Codec

	// Backend persists the encoded snapshot. Defaults to a file backend at
	// the store's normalized path.
	Backend storage.Backend

	// Logger receives structured records for persistence operations and for
	// every surfaced error. Defaults to the logging package default.
	Logger logging.Logger

	// Initial seeds the entry mapping at construction. The map is copied;
	// later caller mutations of it do not reach the store.
	Initial map[string]any

	// Registry, when set, tracks the new store for Registry.SaveAll.
	Registry *Registry
}

// Store associates variable names with runtime values and persists the whole
// mapping as one snapshot. It is not safe for concurrent use; callers sharing
// a store across goroutines must synchronize access themselves.
type Store struct {
	id      string
	path    string
	env     Env
	entries map[string]any
	dirty   bool

	codec    codec.Codec
	backend  storage.Backend
	logger   logging.Logger
	registry *Registry
}

// New creates a Store for the given filename and binding environment with
// optional overrides. The filename is normalized to carry the FileSuffix. A
// nil env reports ErrNoEnv.
func New(filename string, env Env, optFns ...func(o *Options)) (*Store, error) {
	if env == nil {
		logging.Default().Error("store construction failed", "path", filename, "error", ErrNoEnv)
		return nil, ErrNoEnv
	}

	path := NormalizeFilename(filename)

	opts := Options{
		Codec:  codec.Gob{},
		Logger: logging.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Backend == nil {
		opts.Backend = storage.NewFile(path)
	}

	entries := make(map[string]any, len(opts.Initial))
	for k, v := range opts.Initial {
		entries[k] = v
	}

	s := &Store{
		id:       uuid.NewString(),
		path:     path,
		env:      env,
		entries:  entries,
		dirty:    len(entries) > 0,
		codec:    opts.Codec,
		backend:  opts.Backend,
		logger:   opts.Logger,
		registry: opts.Registry,
	}
	if s.registry != nil {
		s.registry.Track(s)
	}

	s.logger.Debug("store created", "store", s.id, "path", s.path, "codec", s.codec.Name(), "entries", len(s.entries))

	return s, nil
}

// Open constructs the store via New and immediately loads the existing
// snapshot, if any. Pair it with Close for scoped use:
//
//	db, err := variabledb.Open("vars", env)
//	if err != nil { ... }
//	defer db.Close()
func Open(filename string, env Env, optFns ...func(o *Options)) (*Store, error) {
	s, err := New(filename, env, optFns...)
	if err != nil {
		return nil, err
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// With runs fn against a freshly opened store and saves on the way out
// regardless of fn's outcome, so mutations made before a failure still reach
// the snapshot. fn's error takes precedence over a failed final save.
func With(filename string, env Env, fn func(s *Store) error, optFns ...func(o *Options)) (err error) {
	s, openErr := Open(filename, env, optFns...)
	if openErr != nil {
		return openErr
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(s)
}

// ID returns the correlation identifier attached to this store's log records.
func (s *Store) ID() string { return s.id }

// Path returns the normalized location of the persisted snapshot.
func (s *Store) Path() string { return s.path }

// Dirty reports whether the in-memory entries may differ from the snapshot
// written by the last Save (or read by the last Load).
func (s *Store) Dirty() bool { return s.dirty }

// String implements fmt.Stringer.
func (s *Store) String() string {
	return fmt.Sprintf("Store(path=%s, entries=%d)", s.path, len(s.entries))
}

func (s *Store) markDirty() { s.dirty = true }

// fail records an operation failure with store context and returns the error
// unchanged, keeping the log-then-surface contract in one place.
func (s *Store) fail(op string, err error, args ...any) error {
	kv := append([]any{"store", s.id, "path", s.path, "error", err}, args...)
	s.logger.Error(op+" failed", kv...)
	return err
}
