package dsl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// UnionDecoder tries its alternatives in declaration order and returns the
// first success unchanged. When every alternative fails, only the input's
// runtime type is reported; individual failures go to the context logger at
// Debug level.
type UnionDecoder[T any] struct {
	alts []decodex.Decoder[T]
}

// Union builds a union. Erase heterogeneous alternatives with Any:
//
//	Union(Any(String()), Any(Number()))
func Union[T any](decoders ...decodex.Decoder[T]) *UnionDecoder[T] {
	alts := make([]decodex.Decoder[T], len(decoders))
	copy(alts, decoders)
	return &UnionDecoder[T]{alts: alts}
}

func (u *UnionDecoder[T]) Decode(ctx context.Context, input any) decodex.Result[T] {
	log := decodex.Logger(ctx)
	for i, d := range u.alts {
		r := d.Decode(ctx, input)
		if r.Success() {
			return r
		}
		log.LogAttrs(ctx, slog.LevelDebug, "union alternative rejected",
			slog.Int("index", i),
			slog.String("decoder", d.String()),
			slog.String("error", r.Issue.Message),
		)
	}
	typ := decodex.TypeOf(input)
	r := decodex.Err[T](decodex.CodeInvalidUnion, i18n.T(ctx, i18n.MsgUnionNoMatch, typ))
	r.Issue.Params = map[string]any{"got": typ}
	return r
}

func (u *UnionDecoder[T]) SafeParse(input any) decodex.Result[T] {
	return u.Decode(context.Background(), input)
}
func (u *UnionDecoder[T]) Parse(input any) (T, error) { return u.SafeParse(input).Unwrap() }

// IsOptional reports whether any alternative is optional.
func (u *UnionDecoder[T]) IsOptional() bool {
	for _, d := range u.alts {
		if d.IsOptional() {
			return true
		}
	}
	return false
}

func (u *UnionDecoder[T]) String() string {
	parts := make([]string, len(u.alts))
	for i, d := range u.alts {
		parts[i] = d.String()
	}
	return "union [ " + strings.Join(parts, " | ") + " ]"
}

func (u *UnionDecoder[T]) JSONSchema() *js.Schema {
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(u.alts))}
	for _, d := range u.alts {
		out.OneOf = append(out.OneOf, d.JSONSchema())
	}
	return out
}
