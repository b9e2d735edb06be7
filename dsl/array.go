package dsl

import (
	"context"
	"strconv"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// ArrayDecoder decodes every element with one element decoder. It accepts
// []any, any Go slice or array, or a string holding a JSON array.
type ArrayDecoder[T any] struct {
	elem     decodex.Decoder[T]
	minItems *int
	maxItems *int
}

// Array builds an array decoder from an element decoder.
func Array[T any](elem decodex.Decoder[T]) *ArrayDecoder[T] {
	return &ArrayDecoder[T]{elem: elem}
}

// Min returns a copy requiring at least n elements.
func (a *ArrayDecoder[T]) Min(n int) *ArrayDecoder[T] {
	out := *a
	out.minItems = &n
	return &out
}

// Max returns a copy allowing at most n elements.
func (a *ArrayDecoder[T]) Max(n int) *ArrayDecoder[T] {
	out := *a
	out.maxItems = &n
	return &out
}

func (a *ArrayDecoder[T]) Decode(ctx context.Context, input any) decodex.Result[[]T] {
	cctx, iss := decodex.Descend(ctx)
	if iss != nil {
		return decodex.Result[[]T]{Issue: iss}
	}
	items, fail := extractArray(ctx, input)
	if fail != nil {
		return decodex.Result[[]T]{Issue: fail}
	}
	if a.minItems != nil && len(items) < *a.minItems {
		r := decodex.Err[[]T](decodex.CodeTooShort, i18n.T(ctx, i18n.MsgArrayTooShort, strconv.Itoa(*a.minItems), strconv.Itoa(len(items))))
		r.Issue.Params = map[string]any{"min": *a.minItems, "got": len(items)}
		return r
	}
	if a.maxItems != nil && len(items) > *a.maxItems {
		r := decodex.Err[[]T](decodex.CodeTooLong, i18n.T(ctx, i18n.MsgArrayTooLong, strconv.Itoa(*a.maxItems), strconv.Itoa(len(items))))
		r.Issue.Params = map[string]any{"max": *a.maxItems, "got": len(items)}
		return r
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		r := a.elem.Decode(cctx, item)
		if !r.Success() {
			return decodex.Rebase[[]T](r, decodex.IndexSegment(i), "array ["+strconv.Itoa(i)+"]")
		}
		out = append(out, r.Value)
	}
	return decodex.Ok(out)
}

func extractArray(ctx context.Context, input any) ([]any, *decodex.Issue) {
	if items, ok := decodex.AsSequence(input); ok {
		return items, nil
	}
	s, ok := decodex.AsString(input)
	if !ok {
		return nil, &decodex.Issue{Path: "/", Code: decodex.CodeInvalidType,
			Message: i18n.T(ctx, i18n.MsgExpectedArrayLike, decodex.TypeOf(input))}
	}
	parsed, err := decodex.UnmarshalJSONText(s)
	if err != nil {
		return nil, &decodex.Issue{Path: "/", Code: decodex.CodeParseError,
			Message: i18n.T(ctx, i18n.MsgArrayJSON, err.Error())}
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil, &decodex.Issue{Path: "/", Code: decodex.CodeInvalidType,
			Message: i18n.T(ctx, i18n.MsgExpectedArray, jsonTypeOf(parsed))}
	}
	return items, nil
}

// jsonTypeOf names a decoded JSON value the way TypeOf does, with null
// reported as "object".
func jsonTypeOf(v any) string {
	if v == nil {
		return "object"
	}
	return decodex.TypeOf(v)
}

func (a *ArrayDecoder[T]) SafeParse(input any) decodex.Result[[]T] {
	return a.Decode(context.Background(), input)
}
func (a *ArrayDecoder[T]) Parse(input any) ([]T, error) { return a.SafeParse(input).Unwrap() }
func (a *ArrayDecoder[T]) IsOptional() bool             { return false }
func (a *ArrayDecoder[T]) String() string               { return "array [ " + a.elem.String() + " ]" }

func (a *ArrayDecoder[T]) JSONSchema() *js.Schema {
	out := &js.Schema{Type: "array", Items: a.elem.JSONSchema()}
	if a.minItems != nil {
		out.MinItems = js.Int(*a.minItems)
	}
	if a.maxItems != nil {
		out.MaxItems = js.Int(*a.maxItems)
	}
	return out
}
