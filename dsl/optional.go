package dsl

import (
	"context"

	"github.com/reoring/decodex"
	js "github.com/reoring/decodex/jsonschema"
)

// OptionalDecoder permits an absent value. Absence is reported as a nil *T.
//
// Any falsy input counts as absent and is not passed to the wrapped decoder:
// nil, false, numeric zero, NaN and "". Optional(Number()) therefore yields nil
// for 0, and Optional(Boolean()) yields nil for false.
type OptionalDecoder[T any] struct {
	inner decodex.Decoder[T]
}

// Optional wraps d so object fields using it may be missing.
func Optional[T any](d decodex.Decoder[T]) *OptionalDecoder[T] {
	return &OptionalDecoder[T]{inner: d}
}

// Unwrap returns the wrapped decoder.
func (o *OptionalDecoder[T]) Unwrap() decodex.Decoder[T] { return o.inner }

func (o *OptionalDecoder[T]) Decode(ctx context.Context, input any) decodex.Result[*T] {
	if decodex.IsFalsy(input) {
		return decodex.Ok[*T](nil)
	}
	r := o.inner.Decode(ctx, input)
	if !r.Success() {
		return decodex.Fail[*T](r)
	}
	v := r.Value
	return decodex.Ok(&v)
}

// decodeAny reports the dereferenced value, or absent.
func (o *OptionalDecoder[T]) decodeAny(ctx context.Context, input any) (any, bool, *decodex.Issue) {
	r := o.Decode(ctx, input)
	if !r.Success() {
		return nil, false, r.Issue
	}
	if r.Value == nil {
		return nil, true, nil
	}
	return *r.Value, false, nil
}

func (o *OptionalDecoder[T]) SafeParse(input any) decodex.Result[*T] {
	return o.Decode(context.Background(), input)
}
func (o *OptionalDecoder[T]) Parse(input any) (*T, error) { return o.SafeParse(input).Unwrap() }
func (o *OptionalDecoder[T]) IsOptional() bool            { return true }
func (o *OptionalDecoder[T]) String() string              { return "optional [ " + o.inner.String() + " ]" }
func (o *OptionalDecoder[T]) JSONSchema() *js.Schema      { return o.inner.JSONSchema() }
