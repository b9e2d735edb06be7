package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decodex"
	g "github.com/reoring/decodex/dsl"
)

func TestBoolean(t *testing.T) {
	b := g.Boolean()
	for in, want := range map[any]bool{
		true:    true,
		false:   false,
		"true":  true,
		"TRUE":  true,
		"False": false,
	} {
		v, err := b.Parse(in)
		require.NoError(t, err, "%v", in)
		assert.Equal(t, want, v, "%v", in)
	}

	assert.Equal(t, `Expected boolean, got "yes"`, b.SafeParse("yes").Message())
	assert.Equal(t, "Expected boolean, got 1", b.SafeParse(1).Message())
	assert.Equal(t, "Expected boolean, got undefined", b.SafeParse(nil).Message())
	assert.Equal(t, "boolean", b.String())
	assert.Equal(t, "boolean", b.JSONSchema().Type)
}

func TestLiteral(t *testing.T) {
	type kind string
	l := g.Literal(kind("card"))

	v, err := l.Parse("card")
	require.NoError(t, err)
	assert.Equal(t, kind("card"), v)

	r := l.SafeParse("bank")
	assert.Equal(t, `Input string does not match literal value "card", got "bank"`, r.Message())
	assert.Equal(t, decodex.CodeInvalidLiteral, r.Issue.Code)
	assert.Equal(t, "Expected string, got number", l.SafeParse(3).Message())

	sch := l.JSONSchema()
	assert.Equal(t, "string", sch.Type)
	require.NotNil(t, sch.Const)
	assert.Equal(t, "card", *sch.Const)
}
