package decodex_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decodex"
	g "github.com/reoring/decodex/dsl"
)

func TestLoadOptions_FromEnv(t *testing.T) {
	t.Setenv("DECODEX_MAX_DEPTH", "1")
	t.Setenv("DECODEX_MAX_BYTES", "2048")
	t.Setenv("DECODEX_LANG", "ja")

	opt, err := decodex.LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, 1, opt.MaxDepth)
	assert.Equal(t, int64(2048), opt.MaxBytes)
	assert.Equal(t, "ja", opt.Language)

	_, err = decodex.ParseReader(context.Background(), g.Array(g.Array(g.Int())), strings.NewReader(`[[1]]`), opt)
	iss, ok := decodex.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, decodex.CodeTooDeep, iss[0].Code)
}

func TestLoadOptions_Unset(t *testing.T) {
	for _, k := range []string{"DECODEX_MAX_DEPTH", "DECODEX_MAX_BYTES", "DECODEX_LANG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	opt, err := decodex.LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, decodex.ParseOpt{}, opt)
}

func TestLoadOptions_Malformed(t *testing.T) {
	t.Setenv("DECODEX_MAX_DEPTH", "deep")

	_, err := decodex.LoadOptions()
	assert.Error(t, err)
	assert.Panics(t, func() { decodex.MustLoadOptions() })
}
