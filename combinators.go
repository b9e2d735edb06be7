package decodex

import (
	"context"

	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// RefineOpt configures a refinement failure.
type RefineOpt struct {
	// Error replaces the default "Failed to parse input" message. Catalog
	// messages (i18n.Msg*) are translated, anything else is used verbatim.
	Error string
	// Code replaces the default issue code (CodeCustom).
	Code string
}

func refineIssue(ctx context.Context, opts []RefineOpt) (code, message string) {
	code, message = CodeCustom, i18n.T(ctx, i18n.MsgRefineDefault)
	if len(opts) > 0 {
		o := opts[len(opts)-1]
		if o.Error != "" {
			message = i18n.Text(ctx, o.Error)
		}
		if o.Code != "" {
			code = o.Code
		}
	}
	return code, message
}

// Transform returns a decoder that runs d and maps its value with fn. Once d
// succeeds the transform cannot fail. It renders and projects as d.
func Transform[T, U any](d Decoder[T], fn func(T) U) Decoder[U] {
	return &transformed[T, U]{parent: d, fn: fn}
}

type transformed[T, U any] struct {
	parent Decoder[T]
	fn     func(T) U
}

func (t *transformed[T, U]) Decode(ctx context.Context, input any) Result[U] {
	r := t.parent.Decode(ctx, input)
	if !r.Success() {
		return Fail[U](r)
	}
	return Ok(t.fn(r.Value))
}

func (t *transformed[T, U]) SafeParse(input any) Result[U] {
	return t.Decode(context.Background(), input)
}
func (t *transformed[T, U]) Parse(input any) (U, error) { return t.SafeParse(input).Unwrap() }
func (t *transformed[T, U]) IsOptional() bool           { return t.parent.IsOptional() }
func (t *transformed[T, U]) String() string             { return t.parent.String() }
func (t *transformed[T, U]) JSONSchema() *js.Schema     { return t.parent.JSONSchema() }

// Refine returns a decoder that runs d and then checks pred against the
// decoded value. A rejected value fails with the configured code (custom by
// default) and message, without any path prefix of its own.
func Refine[T any](d Decoder[T], pred func(T) bool, opts ...RefineOpt) Decoder[T] {
	return &narrowed[T, T]{parent: d, opts: opts, fn: func(v T) (T, bool) { return v, pred(v) }}
}

// Narrow is the type-guard form of Refine: fn both checks and converts.
func Narrow[T, U any](d Decoder[T], fn func(T) (U, bool), opts ...RefineOpt) Decoder[U] {
	return &narrowed[T, U]{parent: d, opts: opts, fn: fn}
}

type narrowed[T, U any] struct {
	parent Decoder[T]
	fn     func(T) (U, bool)
	opts   []RefineOpt
}

func (n *narrowed[T, U]) Decode(ctx context.Context, input any) Result[U] {
	r := n.parent.Decode(ctx, input)
	if !r.Success() {
		return Fail[U](r)
	}
	v, ok := n.fn(r.Value)
	if !ok {
		return Err[U](refineIssue(ctx, n.opts))
	}
	return Ok(v)
}

func (n *narrowed[T, U]) SafeParse(input any) Result[U] {
	return n.Decode(context.Background(), input)
}
func (n *narrowed[T, U]) Parse(input any) (U, error) { return n.SafeParse(input).Unwrap() }
func (n *narrowed[T, U]) IsOptional() bool           { return n.parent.IsOptional() }
func (n *narrowed[T, U]) String() string             { return n.parent.String() }
func (n *narrowed[T, U]) JSONSchema() *js.Schema     { return n.parent.JSONSchema() }
