package codec

// Codec encodes a value to an opaque byte blob and back. The store hands it
// the whole entry mapping; neither the store nor the storage backends look
// inside the blob. Implementations define the wire shape and the set of
// value types they can round-trip.
type Codec interface {
	// Marshal encodes v into a self-contained blob.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes a blob produced by Marshal of the same codec into v.
	Unmarshal(data []byte, v any) error

	// Name identifies the encoding, e.g. in log records.
	Name() string
}
