package dsl_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decodex"
	g "github.com/reoring/decodex/dsl"
)

func TestObject_OptionalFieldOmitted(t *testing.T) {
	o := g.Object(
		g.Field("a", g.String()),
		g.Field("b", g.Optional(g.Number())),
	)

	v, err := o.Parse(map[string]any{"a": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "x"}, v)

	v, err = o.Parse(map[string]any{"a": "x", "b": "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "x", "b": 2.0}, v)
}

func TestObject_DisallowUnknownFields(t *testing.T) {
	r := g.Object().DisallowUnknownFields().SafeParse(map[string]any{"x": 1})
	require.False(t, r.Success())
	assert.Equal(t, `Unknown disallowed fields: "x"`, r.Message())
	assert.Equal(t, decodex.CodeUnknownKey, r.Issue.Code)

	o := g.Object(g.Field("id", g.Int())).DisallowUnknownFields()
	r = o.SafeParse(map[string]any{"id": 1, "zeta": 1, "alpha": 2})
	assert.Equal(t, `Unknown disallowed fields: "alpha, zeta"`, r.Message())

	// unknown keys are ignored by default
	v, err := g.Object(g.Field("id", g.Int())).Parse(map[string]any{"id": 1, "extra": true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(1)}, v)
}

func TestObject_MissingAndInvalidFields(t *testing.T) {
	o := g.Object(
		g.Field("name", g.String()),
		g.Field("address", g.Object(g.Field("zip", g.String().Length(5)))),
	)

	r := o.SafeParse(map[string]any{})
	assert.Equal(t, `Missing required field: "name"`, r.Message())
	assert.Equal(t, decodex.CodeRequired, r.Issue.Code)
	assert.Equal(t, "/name", r.Issue.Path)

	r = o.SafeParse(map[string]any{"name": "n", "address": map[string]any{"zip": "123"}})
	assert.Equal(t, `address -> zip -> Input string is shorter than minimum length 5, got "123"`, r.Message())
	assert.Equal(t, "/address/zip", r.Issue.Path)

	// a present key with a nil value is handed to the field decoder
	r = o.SafeParse(map[string]any{"name": nil})
	assert.Equal(t, "name -> Expected string, got undefined", r.Message())
}

func TestObject_PathEscaping(t *testing.T) {
	o := g.Object(g.Field("a/b", g.Object(g.Field("c~d", g.String()))))
	r := o.SafeParse(map[string]any{"a/b": map[string]any{"c~d": 1}})
	assert.Equal(t, "/a~1b/c~0d", r.Issue.Path)
	assert.Equal(t, "a/b -> c~d -> Expected string, got number", r.Message())
}

func TestObject_Extraction(t *testing.T) {
	o := g.Object(g.Field("id", g.Int()))

	v, err := o.Parse(`{"id": 7}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(7)}, v)

	type payload struct {
		ID      int    `json:"id"`
		Ignored string `json:"-"`
		hidden  int
	}
	v, err = o.Parse(payload{ID: 3, hidden: 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(3)}, v)

	v, err = o.Parse(&payload{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(4)}, v)

	failures := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "Expected object, got undefined"},
		{"zero", 0, "Expected object, got number"},
		{"empty string", "", "Expected object, got string"},
		{"slice", []any{1}, "Array does not qualify as valid object"},
		{"regexp", regexp.MustCompile("x"), "RegExp does not qualify as valid object"},
		{"date", time.Now(), "Date does not qualify as valid object"},
		{"malformed json", "{oops", "Expected object, got string"},
		{"json array", "[1]", "Expected object, got string"},
		{"number", 5, "Expected object with key, got number"},
		{"boolean", true, "Expected object with key, got boolean"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			r := o.SafeParse(tc.in)
			require.False(t, r.Success())
			assert.Equal(t, tc.want, r.Message())
		})
	}
}

func TestObject_ExtendAndExclude(t *testing.T) {
	base := g.Object(
		g.Field("id", g.Int()),
		g.Field("name", g.String()),
	)
	ext := base.Extend(g.Object(
		g.Field("name", g.Optional(g.String())),
		g.Field("email", g.Email()),
	))

	assert.Equal(t, []string{"id", "name", "email"}, ext.Keys())
	v, err := ext.Parse(map[string]any{"id": 1, "email": "a@b.io"})
	require.NoError(t, err, "right-hand name is optional")
	assert.Equal(t, map[string]any{"id": int64(1), "email": "a@b.io"}, v)

	// base is unchanged
	assert.Equal(t, []string{"id", "name"}, base.Keys())
	assert.False(t, base.SafeParse(map[string]any{"id": 1}).Success())

	slim := ext.Exclude("email", "name")
	assert.Equal(t, []string{"id"}, slim.Keys())
	v, err = slim.Parse(map[string]any{"id": 2, "email": "not-an-email"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": int64(2)}, v)
}

func TestObject_ExtendKeepsUnknownPolicy(t *testing.T) {
	strict := g.Object(g.Field("a", g.String())).DisallowUnknownFields()
	ext := strict.Extend(g.Object(g.Field("b", g.String())))
	assert.True(t, ext.SafeParse(map[string]any{"a": "1", "b": "2"}).Success())
	assert.False(t, ext.SafeParse(map[string]any{"a": "1", "b": "2", "c": "3"}).Success())
}

func TestObject_Refine(t *testing.T) {
	o := g.Object(
		g.Field("password", g.String()),
		g.Field("confirm", g.String()),
	).Refine(func(m map[string]any) bool { return m["password"] == m["confirm"] },
		decodex.RefineOpt{Error: "passwords do not match"})

	assert.True(t, o.SafeParse(map[string]any{"password": "p", "confirm": "p"}).Success())
	assert.Equal(t, "passwords do not match", o.SafeParse(map[string]any{"password": "p", "confirm": "q"}).Message())
}

func TestObject_String(t *testing.T) {
	o := g.Object(
		g.Field("a", g.String()),
		g.Field("b", g.Optional(g.Number())),
		g.Field("c", g.Array(g.Boolean())),
	)
	assert.Equal(t, "object { a [ string ], b [ optional [ number ] ], c [ array [ boolean ] ] }", o.String())
}
