package dsl

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// NumberOptions configures Number and Int. Nil bounds are unset.
type NumberOptions struct {
	Min *float64
	Max *float64
}

// NumberDecoder accepts native numbers (every Go numeric kind and json.Number)
// or numeric strings, then enforces the inclusive bounds.
type NumberDecoder[N float64 | int64] struct {
	opts    NumberOptions
	tag     string
	parse   func(string) float64
	convert func(float64) N
	// integral decoders reject values outside the int64 range
	integral bool
}

// int64Bound is 2^63, the first float64 above math.MaxInt64.
const int64Bound = 1 << 63

// Number returns a float64 decoder. Strings are read like a leading-prefix
// float parse: "12.5px" yields 12.5, "abc" is rejected.
func Number(opts ...NumberOptions) *NumberDecoder[float64] {
	return &NumberDecoder[float64]{
		opts:    lastNumberOpts(opts),
		tag:     "number",
		parse:   parseFloatPrefix,
		convert: func(f float64) float64 { return f },
	}
}

// Int returns an int64 decoder. Strings are read like a leading-prefix integer
// parse ("42.9" yields 42, "0x1f" yields 31); native fractions are truncated.
func Int(opts ...NumberOptions) *NumberDecoder[int64] {
	return &NumberDecoder[int64]{
		opts:    lastNumberOpts(opts),
		tag:      "int",
		parse:    parseIntPrefix,
		convert:  func(f float64) int64 { return int64(math.Trunc(f)) },
		integral: true,
	}
}

func lastNumberOpts(opts []NumberOptions) NumberOptions {
	if len(opts) == 0 {
		return NumberOptions{}
	}
	return opts[len(opts)-1]
}

// Min returns a copy with an inclusive lower bound.
func (d *NumberDecoder[N]) Min(v float64) *NumberDecoder[N] {
	out := *d
	out.opts.Min = &v
	return &out
}

// Max returns a copy with an inclusive upper bound.
func (d *NumberDecoder[N]) Max(v float64) *NumberDecoder[N] {
	out := *d
	out.opts.Max = &v
	return &out
}

// Refine is decodex.Refine bound to d.
func (d *NumberDecoder[N]) Refine(pred func(N) bool, opts ...decodex.RefineOpt) decodex.Decoder[N] {
	return decodex.Refine[N](d, pred, opts...)
}

func (d *NumberDecoder[N]) Decode(ctx context.Context, input any) decodex.Result[N] {
	var f float64
	if n, ok := decodex.AsFloat(input); ok {
		if math.IsNaN(n) {
			return decodex.Err[N](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgNaN))
		}
		f = n
	} else if s, ok := decodex.AsString(input); ok {
		f = d.parse(s)
		if math.IsNaN(f) {
			return decodex.Err[N](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgNotNumeric, s))
		}
	} else {
		return decodex.Err[N](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgExpectedNumeric, decodex.TypeOf(input)))
	}
	if d.integral && (f >= int64Bound || f < -int64Bound) {
		code := decodex.CodeTooBig
		if f < 0 {
			code = decodex.CodeTooSmall
		}
		r := decodex.Err[N](code, i18n.T(ctx, i18n.MsgIntegerRange, decodex.Render(input)))
		r.Issue.Params = map[string]any{"got": f}
		return r
	}
	v := d.convert(f)
	cmp := float64(v)
	if lo := d.opts.Min; lo != nil && cmp < *lo {
		r := decodex.Err[N](decodex.CodeTooSmall, i18n.T(ctx, i18n.MsgNumberTooSmall, decodex.FormatNumber(*lo), decodex.Render(input)))
		r.Issue.Params = map[string]any{"min": *lo, "got": cmp}
		return r
	}
	if hi := d.opts.Max; hi != nil && cmp > *hi {
		r := decodex.Err[N](decodex.CodeTooBig, i18n.T(ctx, i18n.MsgNumberTooBig, decodex.FormatNumber(*hi), decodex.Render(input)))
		r.Issue.Params = map[string]any{"max": *hi, "got": cmp}
		return r
	}
	return decodex.Ok(v)
}

func (d *NumberDecoder[N]) SafeParse(input any) decodex.Result[N] {
	return d.Decode(context.Background(), input)
}
func (d *NumberDecoder[N]) Parse(input any) (N, error) { return d.SafeParse(input).Unwrap() }
func (d *NumberDecoder[N]) IsOptional() bool           { return false }
func (d *NumberDecoder[N]) String() string             { return d.tag }

func (d *NumberDecoder[N]) JSONSchema() *js.Schema {
	out := &js.Schema{Type: "number"}
	if d.tag == "int" {
		out.Type = "integer"
	}
	if d.opts.Min != nil {
		out.Minimum = js.Float(*d.opts.Min)
	}
	if d.opts.Max != nil {
		out.Maximum = js.Float(*d.opts.Max)
	}
	return out
}

// ---- string parsing ----

var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// parseFloatPrefix reads the longest numeric prefix of s after leading
// whitespace. It returns NaN when there is none.
func parseFloatPrefix(s string) float64 {
	m := floatPrefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	switch strings.TrimLeft(m, "+-") {
	case "":
		return math.NaN()
	case "Infinity":
		if m[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// out-of-range values come back as ±Inf or 0 alongside ErrRange
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// parseIntPrefix reads a leading decimal (or 0x-prefixed hexadecimal) integer.
// It returns NaN when no digit is found.
func parseIntPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	base := 10.0
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, s = 16, s[2:]
	}
	acc, digits := 0.0, 0
	for _, r := range s {
		d := digitValue(r)
		if d < 0 || float64(d) >= base {
			break
		}
		acc = acc*base + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * acc
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}
