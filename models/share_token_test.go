package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func TestParseShareToken_Simple(t *testing.T) {
	token := ParseShareToken(decodeObject(t, `{"p":"dye_12","s":["dye_7","dye_9"],"pt":"triadic"}`))
	require.NotNil(t, token)

	assert.Equal(t, PrimaryCatalog, token.Kind)
	assert.Equal(t, "dye_12", token.PrimaryID)
	assert.False(t, token.IsCustomPrimary())
	assert.Equal(t, [2]string{"dye_7", "dye_9"}, token.Secondary)
	assert.Equal(t, "triadic", token.Pattern)
}

func TestParseShareToken_CustomPrimary(t *testing.T) {
	token := ParseShareToken(decodeObject(t, `{"p":{"type":"custom","name":"Crimson","rgb":{"r":255,"g":0,"b":0}},"s":["x","y"]}`))
	require.NotNil(t, token)

	assert.Equal(t, PrimaryCustom, token.Kind)
	assert.True(t, token.IsCustomPrimary())
	assert.Equal(t, "Crimson", token.Custom.Name)
	assert.Equal(t, RGB{R: 255, G: 0, B: 0}, token.Custom.RGB)
	assert.Equal(t, [2]string{"x", "y"}, token.Secondary)
}

func TestParseShareToken_MalformedFields(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		kind      PrimaryKind
		secondary [2]string
	}{
		{"missing everything", `{}`, PrimaryNone, [2]string{}},
		{"numeric primary", `{"p":12,"s":["a","b"]}`, PrimaryNone, [2]string{"a", "b"}},
		{"custom without rgb", `{"p":{"type":"custom","name":"x"}}`, PrimaryNone, [2]string{}},
		{"wrong type tag", `{"p":{"type":"dye","rgb":{"r":1,"g":2,"b":3}}}`, PrimaryNone, [2]string{}},
		{"fractional channel", `{"p":{"type":"custom","rgb":{"r":1.5,"g":2,"b":3}}}`, PrimaryNone, [2]string{}},
		{"string channel", `{"p":{"type":"custom","rgb":{"r":"1","g":2,"b":3}}}`, PrimaryNone, [2]string{}},
		{"short secondary", `{"p":"a","s":["b"]}`, PrimaryCatalog, [2]string{"b", ""}},
		{"mixed secondary", `{"p":"a","s":[7,"c"]}`, PrimaryCatalog, [2]string{"", "c"}},
		{"secondary not a list", `{"p":"a","s":"b"}`, PrimaryCatalog, [2]string{}},
		{"long secondary", `{"p":"a","s":["b","c","d"]}`, PrimaryCatalog, [2]string{"b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := ParseShareToken(decodeObject(t, tt.raw))
			require.NotNil(t, token)
			assert.Equal(t, tt.kind, token.Kind)
			assert.Equal(t, tt.secondary, token.Secondary)
		})
	}
}

func TestParseShareToken_OutOfRangeChannelsKept(t *testing.T) {
	token := ParseShareToken(decodeObject(t, `{"p":{"type":"custom","rgb":{"r":300,"g":-1,"b":0}}}`))
	require.True(t, token.IsCustomPrimary())
	assert.Equal(t, RGB{R: 300, G: -1, B: 0}, token.Custom.RGB)
}

func TestParseShareToken_Nil(t *testing.T) {
	assert.Nil(t, ParseShareToken(nil))
}

func TestParseGeometry(t *testing.T) {
	g, err := ParseGeometry("golden")
	require.NoError(t, err)
	assert.Equal(t, GeometryGolden, g)

	_, err = ParseGeometry("diagonal")
	assert.Error(t, err)
}

func TestPatternLabel(t *testing.T) {
	assert.Equal(t, "バランス", PatternLabel("triadic"))
	assert.Equal(t, "unknown", PatternLabel("unknown"))
}
