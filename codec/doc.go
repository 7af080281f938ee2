// Package codec defines the serialization strategies a store can persist its
// entries with.
//
// The Codec interface lives here together with three implementations: Gob
// (binary, the default, widest value coverage), JSON and YAML (both human
// readable, both decoding into generic Go shapes). Callers depend on the
// interface rather than concrete types so encodings can be swapped without
// touching calling code; anything that turns a value into a self-contained
// byte blob and back qualifies.
package codec
