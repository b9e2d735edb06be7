package decodex

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// Decoder is an immutable validator node producing T from untyped input.
//
// Decode is the single validation primitive; SafeParse and Parse are thin
// adapters over it. Implementations must not panic on any input and must not
// mutate themselves or their children, so a Decoder can be shared freely across
// goroutines.
type Decoder[T any] interface {
	// Decode validates input under ctx (depth limit, logger, language).
	Decode(ctx context.Context, input any) Result[T]
	// SafeParse decodes with a background context. It never panics.
	SafeParse(input any) Result[T]
	// Parse decodes and returns Issues on failure.
	Parse(input any) (T, error)
	// IsOptional reports whether an object field using this decoder may be absent.
	IsOptional() bool
	// String renders the decoder tree for diagnostics.
	String() string
	// JSONSchema projects the validation rules into a JSON Schema object.
	JSONSchema() *js.Schema
}

// DefaultMaxDepth bounds structural nesting when ParseOpt.MaxDepth is zero.
const DefaultMaxDepth = 256

// ---- Parse-time context options ----

type contextKey int

const (
	_ctxKeyDepth contextKey = iota
	_ctxKeyMaxDepth
	_ctxKeyLogger
)

var discardLogger = slog.New(slog.DiscardHandler)

// WithMaxDepth returns a child context limiting structural nesting to n levels.
// Zero restores DefaultMaxDepth; a negative n disables the limit.
func WithMaxDepth(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, _ctxKeyMaxDepth, n)
}

func maxDepth(ctx context.Context) int {
	n, _ := ctx.Value(_ctxKeyMaxDepth).(int)
	if n == 0 {
		return DefaultMaxDepth
	}
	return n
}

// Descend is called by structural decoders before visiting children. It
// returns the child context, or an Issue when the nesting limit is exceeded.
func Descend(ctx context.Context) (context.Context, *Issue) {
	depth, _ := ctx.Value(_ctxKeyDepth).(int)
	depth++
	if limit := maxDepth(ctx); limit > 0 && depth > limit {
		return ctx, &Issue{
			Path:    "/",
			Code:    CodeTooDeep,
			Message: i18n.T(ctx, i18n.MsgMaxDepth, strconv.Itoa(limit)),
			Params:  map[string]any{"max": limit},
		}
	}
	return context.WithValue(ctx, _ctxKeyDepth, depth), nil
}

// WithLogger attaches a logger used for decode diagnostics.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, _ctxKeyLogger, l)
}

// Logger returns the context logger, or a discarding logger.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(_ctxKeyLogger).(*slog.Logger); ok && l != nil {
		return l
	}
	return discardLogger
}

// Is returns true if v decodes successfully with d.
func Is[T any](d Decoder[T], v any) bool {
	return d.SafeParse(v).Success()
}
