package dsl

import (
	"context"
	"sort"
	"strings"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// FieldDef is one declared object field. Build it with Field.
type FieldDef struct {
	name    string
	decoder *AnyAdapter
}

// Field declares a field decoded by d. A field whose decoder reports
// IsOptional may be missing from the input.
func Field[T any](name string, d decodex.Decoder[T]) FieldDef {
	return FieldDef{name: name, decoder: Any(d)}
}

// Name returns the field's key.
func (f FieldDef) Name() string { return f.name }

// ObjectDecoder validates a keyed structure field by field, in declaration
// order, and produces map[string]any. Unknown keys are ignored unless
// DisallowUnknownFields is set. Absent optional fields are omitted from the
// output.
type ObjectDecoder struct {
	fields          []FieldDef
	disallowUnknown bool
}

// Object declares an object. A repeated name replaces the earlier definition
// in place.
func Object(fields ...FieldDef) *ObjectDecoder {
	return (&ObjectDecoder{}).with(fields)
}

func (o *ObjectDecoder) with(fields []FieldDef) *ObjectDecoder {
	out := &ObjectDecoder{
		fields:          make([]FieldDef, 0, len(o.fields)+len(fields)),
		disallowUnknown: o.disallowUnknown,
	}
	out.fields = append(out.fields, o.fields...)
	for _, f := range fields {
		if i := out.index(f.name); i >= 0 {
			out.fields[i] = f
			continue
		}
		out.fields = append(out.fields, f)
	}
	return out
}

func (o *ObjectDecoder) index(name string) int {
	for i, f := range o.fields {
		if f.name == name {
			return i
		}
	}
	return -1
}

// DisallowUnknownFields returns a copy that rejects keys not declared.
func (o *ObjectDecoder) DisallowUnknownFields() *ObjectDecoder {
	out := o.with(nil)
	out.disallowUnknown = true
	return out
}

// Extend returns a new object with the fields of other merged in; on a name
// collision other's field wins. The receiver's unknown-field policy is kept.
func (o *ObjectDecoder) Extend(other *ObjectDecoder) *ObjectDecoder {
	return o.with(other.fields)
}

// Exclude returns a new object without the named fields.
func (o *ObjectDecoder) Exclude(keys ...string) *ObjectDecoder {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := &ObjectDecoder{disallowUnknown: o.disallowUnknown}
	for _, f := range o.fields {
		if _, ok := drop[f.name]; !ok {
			out.fields = append(out.fields, f)
		}
	}
	return out
}

// Keys returns the declared field names in order.
func (o *ObjectDecoder) Keys() []string {
	out := make([]string, len(o.fields))
	for i, f := range o.fields {
		out[i] = f.name
	}
	return out
}

// Refine is decodex.Refine bound to o.
func (o *ObjectDecoder) Refine(pred func(map[string]any) bool, opts ...decodex.RefineOpt) decodex.Decoder[map[string]any] {
	return decodex.Refine[map[string]any](o, pred, opts...)
}

func (o *ObjectDecoder) Decode(ctx context.Context, input any) decodex.Result[map[string]any] {
	cctx, iss := decodex.Descend(ctx)
	if iss != nil {
		return decodex.Result[map[string]any]{Issue: iss}
	}
	obj, fail := extractObject(ctx, input)
	if fail != nil {
		return decodex.Result[map[string]any]{Issue: fail}
	}
	out := make(map[string]any, len(o.fields))
	for _, f := range o.fields {
		raw, present := obj[f.name]
		if !present && !f.decoder.IsOptional() {
			r := decodex.Err[map[string]any](decodex.CodeRequired, i18n.T(ctx, i18n.MsgMissingField, f.name))
			r.Issue.Path = "/" + decodex.FieldSegment(f.name)
			return r
		}
		v, absent, iss := f.decoder.decodeAny(cctx, raw)
		if iss != nil {
			return decodex.Rebase[map[string]any](decodex.Result[any]{Issue: iss}, decodex.FieldSegment(f.name), f.name)
		}
		if !absent {
			out[f.name] = v
		}
	}
	if o.disallowUnknown {
		var unknown []string
		for k := range obj {
			if o.index(k) < 0 {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			r := decodex.Err[map[string]any](decodex.CodeUnknownKey, i18n.T(ctx, i18n.MsgUnknownFields, strings.Join(unknown, ", ")))
			r.Issue.Params = map[string]any{"keys": unknown}
			return r
		}
	}
	return decodex.Ok(out)
}

func extractObject(ctx context.Context, input any) (map[string]any, *decodex.Issue) {
	invalid := func(msg string) *decodex.Issue {
		return &decodex.Issue{Path: "/", Code: decodex.CodeInvalidType, Message: msg}
	}
	switch {
	case decodex.IsFalsy(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgExpectedObject, decodex.TypeOf(input)))
	case decodex.IsSequence(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgArrayNotObject))
	case decodex.IsRegExp(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgRegExpNotObject))
	case decodex.IsDate(input):
		return nil, invalid(i18n.T(ctx, i18n.MsgDateNotObject))
	}
	if s, ok := decodex.AsString(input); ok {
		parsed, err := decodex.UnmarshalJSONText(s)
		m, isObj := parsed.(map[string]any)
		if err != nil || !isObj {
			return nil, invalid(i18n.T(ctx, i18n.MsgExpectedObject, decodex.TypeOf(input)))
		}
		return m, nil
	}
	if m, ok := decodex.AsKeyed(input); ok {
		return m, nil
	}
	return nil, invalid(i18n.T(ctx, i18n.MsgExpectedObjectKey, decodex.TypeOf(input)))
}

func (o *ObjectDecoder) SafeParse(input any) decodex.Result[map[string]any] {
	return o.Decode(context.Background(), input)
}
func (o *ObjectDecoder) Parse(input any) (map[string]any, error) { return o.SafeParse(input).Unwrap() }
func (o *ObjectDecoder) IsOptional() bool                        { return false }

func (o *ObjectDecoder) String() string {
	parts := make([]string, len(o.fields))
	for i, f := range o.fields {
		parts[i] = f.name + " [ " + f.decoder.String() + " ]"
	}
	return "object { " + strings.Join(parts, ", ") + " }"
}

func (o *ObjectDecoder) JSONSchema() *js.Schema {
	out := &js.Schema{
		Dialect:    js.Draft,
		Type:       "object",
		Properties: make(map[string]*js.Schema, len(o.fields)),
	}
	for _, f := range o.fields {
		out.Properties[f.name] = f.decoder.JSONSchema()
		if !f.decoder.IsOptional() {
			out.Required = append(out.Required, f.name)
		}
	}
	if o.disallowUnknown {
		out.AdditionalProperties = false
	}
	return out
}
