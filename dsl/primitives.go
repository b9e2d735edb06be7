package dsl

import (
	"context"
	"reflect"
	"strings"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// Boolean returns a decoder accepting native booleans and the strings "true"
// and "false" in any letter case.
func Boolean() decodex.Decoder[bool] { return booleanDecoder{} }

type booleanDecoder struct{}

func (booleanDecoder) Decode(ctx context.Context, input any) decodex.Result[bool] {
	if b, ok := input.(bool); ok {
		return decodex.Ok(b)
	}
	if input != nil {
		if rv := reflect.ValueOf(input); rv.Kind() == reflect.Bool {
			return decodex.Ok(rv.Bool())
		}
	}
	s, ok := decodex.AsString(input)
	if !ok {
		return decodex.Err[bool](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgExpectedBoolean, decodex.Render(input)))
	}
	switch strings.ToLower(s) {
	case "true":
		return decodex.Ok(true)
	case "false":
		return decodex.Ok(false)
	}
	return decodex.Err[bool](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgBooleanString, s))
}

func (b booleanDecoder) SafeParse(input any) decodex.Result[bool] {
	return b.Decode(context.Background(), input)
}
func (b booleanDecoder) Parse(input any) (bool, error) { return b.SafeParse(input).Unwrap() }
func (booleanDecoder) IsOptional() bool                { return false }
func (booleanDecoder) String() string                  { return "boolean" }
func (booleanDecoder) JSONSchema() *js.Schema          { return &js.Schema{Type: "boolean"} }

// Literal returns a decoder accepting exactly the string v.
func Literal[T ~string](v T) decodex.Decoder[T] { return literalDecoder[T]{value: v} }

type literalDecoder[T ~string] struct{ value T }

func (l literalDecoder[T]) Decode(ctx context.Context, input any) decodex.Result[T] {
	s, ok := decodex.AsString(input)
	if !ok {
		return decodex.Err[T](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgExpectedString, decodex.TypeOf(input)))
	}
	if s != string(l.value) {
		r := decodex.Err[T](decodex.CodeInvalidLiteral, i18n.T(ctx, i18n.MsgLiteralMismatch, string(l.value), s))
		r.Issue.Params = map[string]any{"expected": string(l.value)}
		return r
	}
	return decodex.Ok(l.value)
}

func (l literalDecoder[T]) SafeParse(input any) decodex.Result[T] {
	return l.Decode(context.Background(), input)
}
func (l literalDecoder[T]) Parse(input any) (T, error) { return l.SafeParse(input).Unwrap() }
func (literalDecoder[T]) IsOptional() bool             { return false }
func (literalDecoder[T]) String() string               { return "literal" }
func (l literalDecoder[T]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Const: js.String(string(l.value))}
}
