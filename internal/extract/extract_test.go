package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectVerbatim(t *testing.T) {
	var out map[string]interface{}
	ok := Object(`{"industry": "Banking", "offerings": ["Loans", "Cards"]}`, &out)
	require.True(t, ok)
	assert.Equal(t, "Banking", out["industry"])
	assert.Equal(t, []interface{}{"Loans", "Cards"}, out["offerings"])
}

func TestObjectRoundTrip(t *testing.T) {
	original := map[string]interface{}{
		"industry": "Healthcare",
		"segment":  "Oncology",
		"nested":   map[string]interface{}{"a": float64(1)},
	}
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var out map[string]interface{}
	require.True(t, Object(string(raw), &out))
	assert.Equal(t, original, out)
}

func TestArrayFenced(t *testing.T) {
	var out []interface{}
	ok := Array("```json\n[1, 2, 3]\n```", &out)
	require.True(t, ok)
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, out)
}

func TestObjectFencedWithLanguageTag(t *testing.T) {
	var out map[string]interface{}
	require.True(t, Object("```json\n{\"a\": 1}\n```", &out))
	assert.Equal(t, float64(1), out["a"])
}

func TestArraySalvageFromProse(t *testing.T) {
	var out []interface{}
	ok := Array("Sure! Here you go: [1,2,3] Hope that helps.", &out)
	require.True(t, ok)
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, out)
}

func TestObjectSalvageFromProse(t *testing.T) {
	var out map[string]interface{}
	ok := Object(`The profile is {"industry": "Retail"} as requested.`, &out)
	require.True(t, ok)
	assert.Equal(t, "Retail", out["industry"])
}

func TestShapeMismatch(t *testing.T) {
	var arr []interface{}
	assert.False(t, Array(`{"not": "an array"}`, &arr))

	var obj map[string]interface{}
	assert.False(t, Object(`["not", "an", "object"]`, &obj))
}

func TestUnsalvageable(t *testing.T) {
	var out map[string]interface{}
	assert.False(t, Object("I could not produce any JSON, sorry.", &out))
	assert.False(t, Object("", &out))
	assert.False(t, Object(`{"truncated": "missing brace`, &out))
}

func TestArrayTypeMismatchLeavesOutUntouched(t *testing.T) {
	type item struct {
		Title string `json:"title"`
	}
	var out []item
	// The second element cannot decode into the struct; the whole attempt
	// must fail without leaking the partially decoded elements.
	ok := Array(`[{"title": "Real"}, "stray string"]`, &out)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestObjectFailedParseLeavesOutUntouched(t *testing.T) {
	var out map[string]interface{}
	// Syntax error after the first key: the map must not keep "a".
	ok := Object(`{"a": 1, "b": }`, &out)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
	assert.Equal(t, "[1]", StripFences("```json[1]```"))
}

func TestBracketSlice(t *testing.T) {
	got, ok := BracketSlice("noise [1,2] more noise", '[', ']')
	require.True(t, ok)
	assert.Equal(t, "[1,2]", got)

	_, ok = BracketSlice("no brackets here", '[', ']')
	assert.False(t, ok)

	// Closing before opening is not a slice.
	_, ok = BracketSlice("] then [", '[', ']')
	assert.False(t, ok)
}
