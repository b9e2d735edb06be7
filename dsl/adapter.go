package dsl

import (
	"context"

	"github.com/reoring/decodex"
	js "github.com/reoring/decodex/jsonschema"
)

// anyDecoder is implemented by decoders whose typed output should be
// flattened when erased to any (Optional reports absence instead of a nil
// pointer, and the dereferenced value otherwise).
type anyDecoder interface {
	decodeAny(ctx context.Context, input any) (v any, absent bool, iss *decodex.Issue)
}

// AnyAdapter erases a Decoder[T] to Decoder[any] so decoders of different
// output types can share a Union or a generic container.
type AnyAdapter struct {
	decode   func(context.Context, any) (any, bool, *decodex.Issue)
	optional bool
	str      func() string
	schema   func() *js.Schema
}

// Any adapts d. Absent optional values decode to nil.
func Any[T any](d decodex.Decoder[T]) *AnyAdapter {
	return &AnyAdapter{
		decode:   eraseDecode(d),
		optional: d.IsOptional(),
		str:      d.String,
		schema:   d.JSONSchema,
	}
}

func eraseDecode[T any](d decodex.Decoder[T]) func(context.Context, any) (any, bool, *decodex.Issue) {
	if ad, ok := any(d).(anyDecoder); ok {
		return ad.decodeAny
	}
	return func(ctx context.Context, input any) (any, bool, *decodex.Issue) {
		r := d.Decode(ctx, input)
		if !r.Success() {
			return nil, false, r.Issue
		}
		return r.Value, false, nil
	}
}

func (ad *AnyAdapter) Decode(ctx context.Context, input any) decodex.Result[any] {
	v, _, iss := ad.decode(ctx, input)
	if iss != nil {
		return decodex.Result[any]{Issue: iss}
	}
	return decodex.Ok(v)
}

func (ad *AnyAdapter) decodeAny(ctx context.Context, input any) (any, bool, *decodex.Issue) {
	return ad.decode(ctx, input)
}

func (ad *AnyAdapter) SafeParse(input any) decodex.Result[any] {
	return ad.Decode(context.Background(), input)
}
func (ad *AnyAdapter) Parse(input any) (any, error) { return ad.SafeParse(input).Unwrap() }
func (ad *AnyAdapter) IsOptional() bool             { return ad.optional }
func (ad *AnyAdapter) String() string               { return ad.str() }
func (ad *AnyAdapter) JSONSchema() *js.Schema       { return ad.schema() }
