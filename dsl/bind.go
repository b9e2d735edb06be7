package dsl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// Bind decodes with o and then binds the resulting map to struct T through a
// JSON round trip on the current JSON driver. Struct fields are matched by
// their json tags. It panics when T is not a struct or pointer to struct.
func Bind[T any](o *ObjectDecoder) decodex.Decoder[T] {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		panic(fmt.Sprintf("dsl.Bind: %s is not a struct type", rt))
	}
	return &boundObject[T]{inner: o}
}

type boundObject[T any] struct {
	inner *ObjectDecoder
}

func (b *boundObject[T]) Decode(ctx context.Context, input any) decodex.Result[T] {
	r := b.inner.Decode(ctx, input)
	if !r.Success() {
		return decodex.Fail[T](r)
	}
	drv := decodex.CurrentJSONDriver()
	data, err := drv.Marshal(r.Value)
	if err != nil {
		return decodex.Err[T](decodex.CodeParseError, i18n.T(ctx, i18n.MsgBindFailed, err.Error()))
	}
	var out T
	if err := drv.Unmarshal(data, &out); err != nil {
		return decodex.Err[T](decodex.CodeParseError, i18n.T(ctx, i18n.MsgBindFailed, err.Error()))
	}
	return decodex.Ok(out)
}

func (b *boundObject[T]) SafeParse(input any) decodex.Result[T] {
	return b.Decode(context.Background(), input)
}
func (b *boundObject[T]) Parse(input any) (T, error) { return b.SafeParse(input).Unwrap() }
func (b *boundObject[T]) IsOptional() bool           { return false }
func (b *boundObject[T]) String() string             { return b.inner.String() }
func (b *boundObject[T]) JSONSchema() *js.Schema     { return b.inner.JSONSchema() }
