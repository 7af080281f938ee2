package codec

import "gopkg.in/yaml.v3"

// YAML encodes entries as YAML, convenient when snapshots are inspected or
// edited by hand. Like JSON it decodes into generic Go shapes
// (map[string]any, []any) rather than the original concrete types.
type YAML struct{}

// Marshal implements Codec.
func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal implements Codec.
func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Name implements Codec.
func (YAML) Name() string { return "yaml" }
