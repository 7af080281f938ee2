package variabledb

import (
	"fmt"
	"strings"
)

var (
	// ErrNoEnv is returned by New when no binding environment is supplied.
	// Without one the store can neither infer names nor inject loaded values.
	ErrNoEnv = fmt.Errorf("no binding environment")

	// ErrNameInference is returned by Add and Replace when no binding in the
	// environment refers to the given value.
	ErrNameInference = fmt.Errorf("cannot determine variable name")

	// ErrInvalidKey is returned when a variable name is empty.
	ErrInvalidKey = fmt.Errorf("invalid variable name")

	// ErrKeyNotFound is returned when the named variable does not exist in
	// the store (or, for AddFromEnv, in the environment).
	ErrKeyNotFound = fmt.Errorf("variable not found")

	// ErrSerialize is returned by Save when the codec rejects the entries.
	ErrSerialize = fmt.Errorf("serialization failed")

	// ErrDeserialize is returned by Load when the snapshot cannot be decoded.
	ErrDeserialize = fmt.Errorf("deserialization failed")
)

// NamedError pairs a variable name (or store path, for registry flushes)
// with the error its operation produced.
type NamedError struct {
	Name string
	Err  error
}

// BulkError aggregates per-name failures of a bulk operation. Entries of the
// same call that succeeded remain applied and are listed in Applied; callers
// inspect Failures to learn which names were rejected and why.
type BulkError struct {
	Applied  []string
	Failures []NamedError
}

// Error implements the error interface, listing the failed names.
func (e *BulkError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, fmt.Sprintf("%q", f.Name))
	}
	return fmt.Sprintf("bulk operation failed for %d of the given names: %s", len(e.Failures), strings.Join(names, ", "))
}

// Unwrap exposes the underlying failures to errors.Is and errors.As.
func (e *BulkError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
