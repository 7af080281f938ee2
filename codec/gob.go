package codec

import (
	"bytes"
	"encoding/gob"
	"time"
)

func init() {
	// Concrete types carried inside interface values must be registered
	// before gob can encode them. The common composites are covered here;
	// callers register their own types via RegisterType.
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register(time.Time{})
}

// Gob is the default Codec: Go's native binary encoding. It round-trips the
// widest range of values and preserves concrete Go types across save and
// load, at the price of a format only Go programs read. Functions and
// channels are not encodable.
type Gob struct{}

// Marshal implements Codec.
func (Gob) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal implements Codec.
func (Gob) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Name implements Codec.
func (Gob) Name() string { return "gob" }

// RegisterType makes a caller-defined concrete type encodable by Gob when it
// appears inside an interface value. Call it once per type before the first
// Save or Load involving that type.
func RegisterType(value any) {
	gob.Register(value)
}
