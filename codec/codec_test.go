package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ Codec = Gob{}
	_ Codec = JSON{}
	_ Codec = YAML{}
)

func TestCodecNames(t *testing.T) {
	assert.Equal(t, "gob", Gob{}.Name())
	assert.Equal(t, "json", JSON{}.Name())
	assert.Equal(t, "yaml", YAML{}.Name())
}

// -------------------- Gob Tests --------------------

func TestGob_RoundTripPreservesTypes(t *testing.T) {
	when := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := map[string]any{
		"count":  42,
		"ratio":  0.5,
		"name":   "Ada",
		"tags":   []string{"a", "b"},
		"nested": map[string]any{"k": 1},
		"when":   when,
	}

	blob, err := Gob{}.Marshal(entries)
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, Gob{}.Unmarshal(blob, &decoded))

	assert.Equal(t, 42, decoded["count"])
	assert.Equal(t, 0.5, decoded["ratio"])
	assert.Equal(t, "Ada", decoded["name"])
	assert.Equal(t, []string{"a", "b"}, decoded["tags"])
	assert.Equal(t, map[string]any{"k": 1}, decoded["nested"])
	assert.True(t, decoded["when"].(time.Time).Equal(when))
}

type coord struct{ X, Y int }

func TestGob_RegisterType(t *testing.T) {
	RegisterType(coord{})

	blob, err := Gob{}.Marshal(map[string]any{"pos": coord{1, 2}})
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, Gob{}.Unmarshal(blob, &decoded))
	assert.Equal(t, coord{1, 2}, decoded["pos"])
}

type unregistered struct{ A int }

func TestGob_UnregisteredTypeFails(t *testing.T) {
	_, err := Gob{}.Marshal(map[string]any{"v": unregistered{1}})
	assert.Error(t, err)
}

func TestGob_BadBlob(t *testing.T) {
	decoded := map[string]any{}
	assert.Error(t, Gob{}.Unmarshal([]byte("junk"), &decoded))
}

// -------------------- JSON Tests --------------------

func TestJSON_RoundTripCoercions(t *testing.T) {
	blob, err := JSON{}.Marshal(map[string]any{"count": 42, "name": "Ada"})
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, JSON{}.Unmarshal(blob, &decoded))

	// numbers come back as float64
	assert.Equal(t, float64(42), decoded["count"])
	assert.Equal(t, "Ada", decoded["name"])
}

func TestJSON_Indent(t *testing.T) {
	blob, err := JSON{Indent: "  "}.Marshal(map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(blob), "\n  "))
}

func TestJSON_BadBlob(t *testing.T) {
	decoded := map[string]any{}
	assert.Error(t, JSON{}.Unmarshal([]byte("{"), &decoded))
}

// -------------------- YAML Tests --------------------

func TestYAML_RoundTrip(t *testing.T) {
	entries := map[string]any{
		"name":   "Ada",
		"count":  42,
		"nested": map[string]any{"k": "v"},
		"list":   []any{1, "two"},
	}

	blob, err := YAML{}.Marshal(entries)
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, YAML{}.Unmarshal(blob, &decoded))

	assert.Equal(t, "Ada", decoded["name"])
	assert.Equal(t, 42, decoded["count"])
	assert.Equal(t, map[string]any{"k": "v"}, decoded["nested"])
	assert.Equal(t, []any{1, "two"}, decoded["list"])
}

func TestYAML_BadBlob(t *testing.T) {
	decoded := map[string]any{}
	assert.Error(t, YAML{}.Unmarshal([]byte("{]"), &decoded))
}
