package dsl

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// EnumDecoder accepts one of a closed set of string values. Membership is
// decided by string value whatever the input type; non-members fail with
// invalid_enum rather than a type error.
type EnumDecoder[T ~string] struct {
	values []T
}

// Enumerate returns an enum over values, in the given order.
func Enumerate[T ~string](values ...T) *EnumDecoder[T] {
	return &EnumDecoder[T]{values: slices.Clone(values)}
}

// EnumerateMap returns an enum over the values of m, ordered by key.
func EnumerateMap[T ~string](m map[string]T) *EnumDecoder[T] {
	return &EnumDecoder[T]{values: mapValues(m)}
}

func mapValues[T ~string](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// Values returns a copy of the accepted values.
func (e *EnumDecoder[T]) Values() []T { return slices.Clone(e.values) }

// Exclude returns a new enum without values.
func (e *EnumDecoder[T]) Exclude(values ...T) *EnumDecoder[T] {
	out := make([]T, 0, len(e.values))
	for _, v := range e.values {
		if !slices.Contains(values, v) {
			out = append(out, v)
		}
	}
	return &EnumDecoder[T]{values: out}
}

// Include returns a new enum with values appended; existing members are kept once.
func (e *EnumDecoder[T]) Include(values ...T) *EnumDecoder[T] {
	out := slices.Clone(e.values)
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return &EnumDecoder[T]{values: out}
}

// IncludeMap is Include over the values of m, ordered by key.
func (e *EnumDecoder[T]) IncludeMap(m map[string]T) *EnumDecoder[T] {
	return e.Include(mapValues(m)...)
}

func (e *EnumDecoder[T]) Decode(ctx context.Context, input any) decodex.Result[T] {
	if s, ok := decodex.AsString(input); ok {
		for _, v := range e.values {
			if string(v) == s {
				return decodex.Ok(v)
			}
		}
	}
	r := decodex.Err[T](decodex.CodeInvalidEnum, i18n.T(ctx, i18n.MsgInvalidEnum, decodex.Render(input)))
	r.Issue.Params = map[string]any{"allowed": e.strings()}
	return r
}

func (e *EnumDecoder[T]) strings() []string {
	out := make([]string, len(e.values))
	for i, v := range e.values {
		out[i] = string(v)
	}
	return out
}

func (e *EnumDecoder[T]) SafeParse(input any) decodex.Result[T] {
	return e.Decode(context.Background(), input)
}
func (e *EnumDecoder[T]) Parse(input any) (T, error) { return e.SafeParse(input).Unwrap() }
func (e *EnumDecoder[T]) IsOptional() bool           { return false }
func (e *EnumDecoder[T]) String() string {
	return "enum [ " + strings.Join(e.strings(), ", ") + " ]"
}

func (e *EnumDecoder[T]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "string", Enum: e.strings()}
}
