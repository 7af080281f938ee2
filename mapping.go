package variabledb

import (
	"fmt"
	"io"
	"iter"
	"sort"
)

// Add stores value under the name of the environment binding that refers to
// it. When no binding matches, ErrNameInference is reported.
func (s *Store) Add(value any) error {
	name, ok := InferName(s.env, value)
	if !ok {
		return s.fail("add", ErrNameInference)
	}
	s.entries[name] = value
	s.markDirty()
	s.logger.Debug("variable added", "store", s.id, "name", name)
	return nil
}

// Set stores value under name, silently overwriting any previous value. An
// empty name reports ErrInvalidKey.
func (s *Store) Set(name string, value any) error {
	if name == "" {
		return s.fail("set", ErrInvalidKey)
	}
	s.entries[name] = value
	s.markDirty()
	return nil
}

// AddFromEnv copies the environment's current binding of name into the
// store. A name the environment does not bind reports ErrKeyNotFound.
func (s *Store) AddFromEnv(name string) error {
	if name == "" {
		return s.fail("add from env", ErrInvalidKey)
	}
	value, ok := s.env[name]
	if !ok {
		return s.fail("add from env", fmt.Errorf("%w: %q is not bound in the environment", ErrKeyNotFound, name))
	}
	s.entries[name] = value
	s.markDirty()
	return nil
}

// AddMany stores every entry of vars, attempting all of them in sorted name
// order. Valid entries are applied even when others fail; the failures come
// back aggregated in a single *BulkError.
func (s *Store) AddMany(vars map[string]any) error {
	var applied []string
	var failures []NamedError
	for _, name := range sortedKeys(vars) {
		if name == "" {
			failures = append(failures, NamedError{Name: name, Err: ErrInvalidKey})
			continue
		}
		s.entries[name] = vars[name]
		applied = append(applied, name)
	}
	if len(applied) > 0 {
		s.markDirty()
	}
	if len(failures) > 0 {
		err := &BulkError{Applied: applied, Failures: failures}
		s.logger.Error("add many partially failed", "store", s.id, "path", s.path, "applied", len(applied), "failed", len(failures), "error", err)
		return err
	}
	return nil
}

// Replace swaps the stored value of a variable that already exists, locating
// its name by identity the way Add does. A name with no stored entry reports
// ErrKeyNotFound.
func (s *Store) Replace(value any) error {
	name, ok := InferName(s.env, value)
	if !ok {
		return s.fail("replace", ErrNameInference)
	}
	if _, exists := s.entries[name]; !exists {
		return s.fail("replace", fmt.Errorf("%w: %s", ErrKeyNotFound, name))
	}
	s.entries[name] = value
	s.markDirty()
	return nil
}

// Get returns the stored value for name or ErrKeyNotFound.
func (s *Store) Get(name string) (any, error) {
	value, ok := s.entries[name]
	if !ok {
		return nil, s.fail("get", fmt.Errorf("%w: %s", ErrKeyNotFound, name))
	}
	return value, nil
}

// GetOr returns the stored value for name, or fallback when absent.
func (s *Store) GetOr(name string, fallback any) any {
	if value, ok := s.entries[name]; ok {
		return value
	}
	return fallback
}

// Has reports whether a variable with the given name is stored.
func (s *Store) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Delete removes the named variable from the store. Empty names report
// ErrInvalidKey and unknown names ErrKeyNotFound. The environment binding,
// if any, stays in place.
func (s *Store) Delete(name string) error {
	if name == "" {
		return s.fail("delete", ErrInvalidKey)
	}
	if _, ok := s.entries[name]; !ok {
		return s.fail("delete", fmt.Errorf("%w: %s", ErrKeyNotFound, name))
	}
	delete(s.entries, name)
	s.markDirty()
	return nil
}

// Clear drops every entry. It never fails and does not touch the environment.
func (s *Store) Clear() {
	if len(s.entries) == 0 {
		return
	}
	s.entries = make(map[string]any)
	s.markDirty()
	s.logger.Debug("store cleared", "store", s.id, "path", s.path)
}

// Update merges vars into the store. Every key is validated before anything
// is applied, so an invalid name leaves the entries untouched. With
// overwrite false, names that already exist keep their current values.
func (s *Store) Update(vars map[string]any, overwrite bool) error {
	for name := range vars {
		if name == "" {
			return s.fail("update", ErrInvalidKey)
		}
	}
	changed := false
	for _, name := range sortedKeys(vars) {
		if !overwrite {
			if _, exists := s.entries[name]; exists {
				continue
			}
		}
		s.entries[name] = vars[name]
		changed = true
	}
	if changed {
		s.markDirty()
	}
	return nil
}

// Len returns the number of stored variables.
func (s *Store) Len() int { return len(s.entries) }

// IsEmpty reports whether the store holds no variables.
func (s *Store) IsEmpty() bool { return len(s.entries) == 0 }

// Names returns the stored variable names in sorted order. The slice is a
// snapshot and safe for caller mutation.
func (s *Store) Names() []string { return sortedKeys(s.entries) }

// Snapshot returns a shallow copy of the entry mapping. Mutating the
// returned map does not affect the store; mutating shared reference values
// does.
func (s *Store) Snapshot() map[string]any {
	cp := make(map[string]any, len(s.entries))
	for k, v := range s.entries {
		cp[k] = v
	}
	return cp
}

// All returns an iterator over (name, value) pairs in sorted name order. The
// sequence is lazy and restartable: each restart reflects the entries at
// that moment, and names deleted mid-iteration are skipped.
func (s *Store) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range s.Names() {
			value, ok := s.entries[name]
			if !ok {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

// Dump writes a human readable "name = value" listing to w in sorted order.
func (s *Store) Dump(w io.Writer) error {
	for name, value := range s.All() {
		if _, err := fmt.Fprintf(w, "%s = %v\n", name, value); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
