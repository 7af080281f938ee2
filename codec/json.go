package codec

import "encoding/json"

// JSON encodes entries as human readable JSON. Decoding produces generic Go
// shapes: numbers come back as float64 and nested objects as map[string]any.
// Prefer Gob when concrete Go types must survive the round-trip.
type JSON struct {
	// Indent pretty-prints the blob with the given indent string when
	// non-empty.
	Indent string
}

// Marshal implements Codec.
func (c JSON) Marshal(v any) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Unmarshal implements Codec.
func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name implements Codec.
func (JSON) Name() string { return "json" }
