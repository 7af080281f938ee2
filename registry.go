package variabledb

// Registry tracks stores so unsaved work can be flushed in one call, for
// example from a shutdown path. Stores join through Options.Registry. Like
// the stores themselves it is single-threaded; callers coordinate access.
type Registry struct {
	stores []*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Track adds s to the registry. Tracking the same store twice is a no-op.
func (r *Registry) Track(s *Store) {
	for _, existing := range r.stores {
		if existing == s {
			return
		}
	}
	r.stores = append(r.stores, s)
}

// Stores returns the tracked stores in tracking order. The slice is a
// snapshot and safe for caller mutation.
func (r *Registry) Stores() []*Store {
	cp := make([]*Store, len(r.stores))
	copy(cp, r.stores)
	return cp
}

// Unsaved returns the tracked stores whose entries differ from their last
// snapshot.
func (r *Registry) Unsaved() []*Store {
	var unsaved []*Store
	for _, s := range r.stores {
		if s.Dirty() {
			unsaved = append(unsaved, s)
		}
	}
	return unsaved
}

// SaveAll saves every unsaved store, continuing past failures and reporting
// them aggregated under the failing stores' paths.
func (r *Registry) SaveAll() error {
	var saved []string
	var failures []NamedError
	for _, s := range r.stores {
		if !s.Dirty() {
			continue
		}
		if err := s.Save(); err != nil {
			failures = append(failures, NamedError{Name: s.Path(), Err: err})
			continue
		}
		saved = append(saved, s.Path())
	}
	if len(failures) > 0 {
		return &BulkError{Applied: saved, Failures: failures}
	}
	return nil
}
