package dsl_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decodex"
	g "github.com/reoring/decodex/dsl"
)

func TestString_TypeCheck(t *testing.T) {
	s := g.String()

	v, err := s.Parse("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	type named string
	v, err = s.Parse(named("typed"))
	require.NoError(t, err)
	assert.Equal(t, "typed", v)

	cases := map[string]struct {
		in   any
		want string
	}{
		"number":  {in: 42, want: "Expected string, got number"},
		"boolean": {in: true, want: "Expected string, got boolean"},
		"nil":     {in: nil, want: "Expected string, got undefined"},
		"map":     {in: map[string]any{}, want: "Expected string, got object"},
		"func":    {in: func() {}, want: "Expected string, got function"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := s.SafeParse(tc.in)
			require.False(t, r.Success())
			assert.Equal(t, tc.want, r.Message())
			assert.Equal(t, decodex.CodeInvalidType, r.Issue.Code)
		})
	}
}

func TestString_MinLengthMessage(t *testing.T) {
	_, err := g.String(g.StringOptions{MinLength: 5}).Parse("test")
	require.Error(t, err)
	assert.Equal(t, `Input string is shorter than minimum length 5, got "test"`, err.Error())

	iss, ok := decodex.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, decodex.CodeTooShort, iss[0].Code)
	assert.Equal(t, "/", iss[0].Path)
}

func TestString_CheckOrder(t *testing.T) {
	s := g.String(g.StringOptions{Pattern: regexp.MustCompile(`^[a-z]+$`), MinLength: 3, MaxLength: 5})

	// pattern is checked before the length bounds
	r := s.SafeParse("A")
	assert.Equal(t, `Input string does not match pattern "/^[a-z]+$/", got "A"`, r.Message())
	assert.Equal(t, decodex.CodePattern, r.Issue.Code)

	r = s.SafeParse("ab")
	assert.Equal(t, `Input string is shorter than minimum length 3, got "ab"`, r.Message())

	r = s.SafeParse("abcdef")
	assert.Equal(t, `Input string is longer than maximum length 5, got "abcdef"`, r.Message())
	assert.Equal(t, decodex.CodeTooLong, r.Issue.Code)
}

func TestString_ValidInputsWithinBoundsSucceed(t *testing.T) {
	s := g.String(g.StringOptions{Pattern: regexp.MustCompile(`^x*$`), MinLength: 2, MaxLength: 8})
	for n := 2; n <= 8; n++ {
		in := strings.Repeat("x", n)
		assert.True(t, s.SafeParse(in).Success(), "length %d", n)
	}
	assert.False(t, s.SafeParse("x").Success())
	assert.False(t, s.SafeParse(strings.Repeat("x", 9)).Success())
}

func TestString_BuilderMethodsCopy(t *testing.T) {
	base := g.String()
	short := base.Max(3)
	named := base.Pattern(regexp.MustCompile(`^\d+$`), "digits")

	assert.True(t, base.SafeParse("long enough").Success())
	assert.False(t, short.SafeParse("long enough").Success())
	assert.Equal(t, `Input string does not match pattern "digits", got "abc"`, named.SafeParse("abc").Message())

	exact := base.Length(2)
	assert.True(t, exact.SafeParse("日本").Success(), "length counts runes")
	assert.False(t, exact.SafeParse("abc").Success())
	assert.True(t, base.Min(1).SafeParse("a").Success())
}

func TestString_InvalidBoundsPanic(t *testing.T) {
	assert.PanicsWithValue(t, "Minimum length cannot be greater than maximum length", func() {
		g.String(g.StringOptions{MinLength: 4, MaxLength: 2})
	})
	assert.Panics(t, func() { g.String().Max(2).Min(4) })
	assert.NotPanics(t, func() { g.String(g.StringOptions{MinLength: 4}) })
}

func TestString_Refine(t *testing.T) {
	s := g.String().Refine(func(s string) bool { return strings.HasPrefix(s, "sk_") })
	assert.True(t, s.SafeParse("sk_123").Success())

	r := s.SafeParse("pk_123")
	assert.Equal(t, "Failed to parse input", r.Message())
	assert.Equal(t, decodex.CodeCustom, r.Issue.Code)

	custom := g.String().Refine(func(s string) bool { return s != "" }, decodex.RefineOpt{Error: "must not be empty"})
	assert.Equal(t, "must not be empty", custom.SafeParse("").Message())
	// the parent's failure is forwarded untouched
	assert.Equal(t, "Expected string, got number", custom.SafeParse(1).Message())
}

func TestString_SchemaAndString(t *testing.T) {
	s := g.String(g.StringOptions{Pattern: regexp.MustCompile(`^a`), MinLength: 1, MaxLength: 3})
	assert.Equal(t, "string", s.String())
	sch := s.JSONSchema()
	assert.Equal(t, "string", sch.Type)
	assert.Equal(t, "^a", sch.Pattern)
	require.NotNil(t, sch.MinLength)
	require.NotNil(t, sch.MaxLength)
	assert.Equal(t, 1, *sch.MinLength)
	assert.Equal(t, 3, *sch.MaxLength)
}
