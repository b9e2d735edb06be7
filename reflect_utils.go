package decodex

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key when a struct is decoded as an object or record.
// Priority: decodex:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("decodex"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 && i > 0 {
			return jt[:i]
		} else if i == 0 {
			return sf.Name
		}
		return jt
	}
	return sf.Name
}

// TypeOf names the runtime type of v the way diagnostics report it:
// "undefined", "string", "number", "boolean", "function" or "object".
func TypeOf(v any) string {
	if v == nil {
		return "undefined"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Func:
		return "function"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "undefined"
		}
	}
	return "object"
}

// Render formats v for inclusion in a message: strings verbatim, numbers in
// their shortest form, nil and nil pointers as "undefined".
func Render(v any) string {
	if v == nil {
		return "undefined"
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "undefined"
		}
	case reflect.String:
		return rv.String()
	}
	if f, ok := AsFloat(v); ok {
		return FormatNumber(f)
	}
	// fmt recovers from panicking String methods
	return fmt.Sprint(v)
}

// FormatNumber renders f without exponent for ordinary magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a != 0 && (a >= 1e21 || a < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AsFloat converts any Go numeric value (and json.Number) to float64.
func AsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// AsString returns the string content of v when its kind is string.
func AsString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	if _, isNum := v.(json.Number); isNum {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// IsFalsy reports whether v counts as absent: nil (including typed nil
// pointers), false, numeric zero, NaN and the empty string.
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && (f == 0 || math.IsNaN(f))
	}
	if f, ok := AsFloat(v); ok {
		return f == 0 || math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsSequence reports whether v is a slice or array (but not a string).
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]any); ok {
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// AsSequence returns the elements of a slice or array as []any.
func AsSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// IsRegExp, IsDate and IsError identify the built-in shapes that are rejected
// where a keyed structure is expected.
func IsRegExp(v any) bool {
	switch v.(type) {
	case *regexp.Regexp, regexp.Regexp:
		return true
	}
	return false
}

func IsDate(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	}
	return false
}

func IsError(v any) bool {
	_, ok := v.(error)
	return ok
}

// AsKeyed returns v as a string-keyed map: map[string]any as-is, other maps
// with keys rendered as strings, and structs by their exported fields (see
// ResolveStructKey). Pointers are followed.
func AsKeyed(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out[Render(it.Key().Interface())] = it.Value().Interface()
		}
		return out, true
	case reflect.Struct:
		rt := rv.Type()
		out := make(map[string]any, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := ResolveStructKey(sf)
			if name == "-" || name == "" {
				continue
			}
			out[name] = rv.Field(i).Interface()
		}
		return out, true
	}
	return nil, false
}
