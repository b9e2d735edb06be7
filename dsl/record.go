package dsl

import (
	"context"
	"sort"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// RecordKey lists the key types a record can produce.
type RecordKey interface {
	~string | ~int | ~int64 | ~float64
}

// RecordDecoder validates every entry of a keyed structure. Keys are handed
// to the key decoder as strings and visited in ascending order.
type RecordDecoder[K RecordKey, V any] struct {
	key   decodex.Decoder[K]
	value decodex.Decoder[V]
}

// Record builds a record decoder from a key and a value decoder.
func Record[K RecordKey, V any](key decodex.Decoder[K], value decodex.Decoder[V]) *RecordDecoder[K, V] {
	return &RecordDecoder[K, V]{key: key, value: value}
}

// Dictionary is Record(String(), value).
func Dictionary[V any](value decodex.Decoder[V]) *RecordDecoder[string, V] {
	return Record[string, V](String(), value)
}

func (rd *RecordDecoder[K, V]) Decode(ctx context.Context, input any) decodex.Result[map[K]V] {
	cctx, iss := decodex.Descend(ctx)
	if iss != nil {
		return decodex.Result[map[K]V]{Issue: iss}
	}
	entries, fail := extractRecord(ctx, input)
	if fail != nil {
		return decodex.Result[map[K]V]{Issue: fail}
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[K]V, len(entries))
	for _, raw := range keys {
		kr := rd.key.Decode(cctx, raw)
		if !kr.Success() {
			return decodex.Rebase[map[K]V](kr, decodex.FieldSegment(raw), i18n.T(ctx, i18n.MsgRecordKey, raw))
		}
		vr := rd.value.Decode(cctx, entries[raw])
		if !vr.Success() {
			return decodex.Rebase[map[K]V](vr, decodex.FieldSegment(raw), i18n.T(ctx, i18n.MsgRecordValue, decodex.Render(kr.Value)))
		}
		out[kr.Value] = vr.Value
	}
	return decodex.Ok(out)
}

func extractRecord(ctx context.Context, input any) (map[string]any, *decodex.Issue) {
	invalid := func(msg string) *decodex.Issue {
		return &decodex.Issue{Path: "/", Code: decodex.CodeInvalidType, Message: msg}
	}
	switch {
	case decodex.IsFalsy(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgRecordUndefined))
	case decodex.IsSequence(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgRecordArray))
	case decodex.IsRegExp(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgRecordRegExp))
	case decodex.IsDate(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgRecordDate))
	case decodex.IsError(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgRecordError))
	}
	if _, isStr := decodex.AsString(input); !isStr {
		if m, ok := decodex.AsKeyed(input); ok {
			return m, nil
		}
	}
	return nil, invalid(i18n.T(ctx, i18n.MsgExpectedRecord, decodex.TypeOf(input)))
}

func (rd *RecordDecoder[K, V]) SafeParse(input any) decodex.Result[map[K]V] {
	return rd.Decode(context.Background(), input)
}
func (rd *RecordDecoder[K, V]) Parse(input any) (map[K]V, error) { return rd.SafeParse(input).Unwrap() }
func (rd *RecordDecoder[K, V]) IsOptional() bool                 { return false }
func (rd *RecordDecoder[K, V]) String() string {
	return "record [ " + rd.key.String() + ", " + rd.value.String() + " ]"
}

func (rd *RecordDecoder[K, V]) JSONSchema() *js.Schema {
	return &js.Schema{
		Type:                 "object",
		AdditionalProperties: rd.value.JSONSchema(),
		PropertyNames:        rd.key.JSONSchema(),
	}
}
