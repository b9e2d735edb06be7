package dsl_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decodex"
	g "github.com/reoring/decodex/dsl"
)

func TestEmail(t *testing.T) {
	e := g.Email()
	for _, ok := range []string{"user@example.com", "first.last+tag@sub.example.co.jp"} {
		assert.True(t, e.SafeParse(ok).Success(), ok)
	}
	for _, bad := range []string{"invalid-email", "@example.com", "user@", "a@b"} {
		assert.Equal(t, `Input string does not match pattern "email", got "`+bad+`"`, e.SafeParse(bad).Message())
	}
	assert.Equal(t, "email", e.JSONSchema().Format)
}

func TestUUID(t *testing.T) {
	u := g.UUID()
	assert.True(t, u.SafeParse("550e8400-e29b-41d4-a716-446655440000").Success())
	for _, bad := range []string{"invalid-uuid", "550e8400-e29b-41d4-a716", "550e8400e29b41d4a716446655440000"} {
		assert.Equal(t, `Input string does not match pattern "UUID", got "`+bad+`"`, u.SafeParse(bad).Message())
	}
	assert.Equal(t, "uuid", u.JSONSchema().Format)
}

func TestUUIDValue(t *testing.T) {
	id := uuid.New()
	v, err := g.UUIDValue().Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, v)

	_, err = g.UUIDValue().Parse("nope")
	require.Error(t, err)
}

func TestDate(t *testing.T) {
	d := g.Date()
	cases := map[string]time.Time{
		"2024-01-02":             time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"2024-01-02T03:04:05Z":   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"2024-01-02 03:04:05":    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		"January 2, 2024":        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"2024-01-02T03:04:05.5Z": time.Date(2024, 1, 2, 3, 4, 5, 500_000_000, time.UTC),
	}
	for in, want := range cases {
		v, err := d.Parse(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(v), "%s: got %s", in, v)
	}

	r := d.SafeParse("not a date")
	assert.Equal(t, "Input string is not a valid date", r.Message())
	assert.Equal(t, decodex.CodeInvalidFormat, r.Issue.Code)
	assert.Equal(t, "Expected string, got number", d.SafeParse(5).Message())
	assert.Equal(t, "string", d.String())
}

func TestDate_MessageFollowsLanguage(t *testing.T) {
	ctx := context.Background()
	r := decodex.Decode(ctx, g.Date(), "not a date", decodex.ParseOpt{Language: "ja"})
	require.False(t, r.Success())
	assert.Equal(t, "日付として解釈できません", r.Message())
	assert.Equal(t, decodex.CodeInvalidFormat, r.Issue.Code)

	r = decodex.Decode(ctx, g.Date(), "not a date")
	assert.Equal(t, "Input string is not a valid date", r.Message())

	// custom refine messages outside the catalog stay verbatim
	d := decodex.Refine(g.Number(), func(f float64) bool { return f <= 100 }, decodex.RefineOpt{Error: "at most 100%"})
	r2 := decodex.Decode(ctx, d, 101, decodex.ParseOpt{Language: "ja"})
	assert.Equal(t, "at most 100%", r2.Message())
}
