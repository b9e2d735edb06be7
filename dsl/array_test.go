package dsl_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decodex"
	g "github.com/reoring/decodex/dsl"
)

func TestArray_FromJSONText(t *testing.T) {
	v, err := g.Array(g.Number()).Parse("[1,2,3]")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v)
}

func TestArray_JSONTextMatchesDecodedInput(t *testing.T) {
	a := g.Array(g.Array(g.String()))
	texts := []string{`[]`, `[["a"],["b","c"]]`, `[[], ["x"]]`}
	for _, text := range texts {
		var decoded any
		require.NoError(t, json.Unmarshal([]byte(text), &decoded))

		fromText, err1 := a.Parse(text)
		fromValue, err2 := a.Parse(decoded)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, fromValue, fromText, text)
	}
}

func TestArray_AcceptsGoSlices(t *testing.T) {
	v, err := g.Array(g.Int()).Parse([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, v)

	s, err := g.Array(g.String()).Parse([2]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s)
}

func TestArray_ExtractionFailures(t *testing.T) {
	a := g.Array(g.Number())

	r := a.SafeParse(12)
	assert.Equal(t, "Expected array-like string, got number", r.Message())
	assert.Equal(t, decodex.CodeInvalidType, r.Issue.Code)

	assert.Equal(t, "Expected array, got object", a.SafeParse(`{"a":1}`).Message())
	assert.Equal(t, "Expected array, got number", a.SafeParse(`5`).Message())

	r = a.SafeParse(`[1,`)
	assert.True(t, strings.HasPrefix(r.Message(), "Failed to parse array: "), r.Message())
	assert.Equal(t, decodex.CodeParseError, r.Issue.Code)
}

func TestArray_ElementFailureIsPrefixed(t *testing.T) {
	a := g.Array(g.Array(g.Number()))
	r := a.SafeParse([]any{[]any{1}, []any{2, "x"}})
	require.False(t, r.Success())
	assert.Equal(t, `array [1] -> array [1] -> Expected number, got "x"`, r.Message())
	assert.Equal(t, "/1/1", r.Issue.Path)

	// the first failing element wins
	r2 := g.Array(g.String()).SafeParse([]any{1, 2})
	assert.Equal(t, "array [0] -> Expected string, got number", r2.Message())
}

func TestArray_ItemBounds(t *testing.T) {
	a := g.Array(g.String()).Min(1).Max(2)

	assert.True(t, a.SafeParse([]any{"a"}).Success())

	r := a.SafeParse([]any{})
	assert.Equal(t, "Array is shorter than minimum length 1, got 0", r.Message())
	assert.Equal(t, decodex.CodeTooShort, r.Issue.Code)

	r = a.SafeParse([]any{"a", "b", "c"})
	assert.Equal(t, "Array is longer than maximum length 2, got 3", r.Message())

	sch := a.JSONSchema()
	assert.Equal(t, "array", sch.Type)
	assert.Equal(t, "string", sch.Items.Type)
	assert.Equal(t, 1, *sch.MinItems)
	assert.Equal(t, 2, *sch.MaxItems)
	assert.Equal(t, "array [ string ]", a.String())
}
