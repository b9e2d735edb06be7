package dsl

import (
	"context"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
	js "github.com/reoring/decodex/jsonschema"
)

// StringOptions configures String. Zero lengths mean "unset".
type StringOptions struct {
	Pattern     *regexp.Regexp
	PatternName string // used in messages instead of the pattern source
	MinLength   int
	MaxLength   int
}

// StringDecoder accepts strings (any type whose kind is string) and checks,
// in order, pattern, minimum length and maximum length. Lengths count runes.
type StringDecoder struct {
	opts   StringOptions
	format string
}

// String returns a string decoder. It panics when both lengths are set and
// MinLength > MaxLength.
func String(opts ...StringOptions) *StringDecoder {
	var o StringOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	return newString(o, "")
}

func newString(o StringOptions, format string) *StringDecoder {
	if o.MinLength > 0 && o.MaxLength > 0 && o.MinLength > o.MaxLength {
		panic("Minimum length cannot be greater than maximum length")
	}
	return &StringDecoder{opts: o, format: format}
}

// Pattern returns a copy that requires re to match. name, when set, replaces
// the pattern source in failure messages.
func (s *StringDecoder) Pattern(re *regexp.Regexp, name string) *StringDecoder {
	o := s.opts
	o.Pattern, o.PatternName = re, name
	return newString(o, s.format)
}

// Min returns a copy with a minimum length.
func (s *StringDecoder) Min(n int) *StringDecoder {
	o := s.opts
	o.MinLength = n
	return newString(o, s.format)
}

// Max returns a copy with a maximum length.
func (s *StringDecoder) Max(n int) *StringDecoder {
	o := s.opts
	o.MaxLength = n
	return newString(o, s.format)
}

// Length returns a copy accepting exactly n runes.
func (s *StringDecoder) Length(n int) *StringDecoder {
	o := s.opts
	o.MinLength, o.MaxLength = n, n
	return newString(o, s.format)
}

// Refine is decodex.Refine bound to s.
func (s *StringDecoder) Refine(pred func(string) bool, opts ...decodex.RefineOpt) decodex.Decoder[string] {
	return decodex.Refine[string](s, pred, opts...)
}

func (s *StringDecoder) Decode(ctx context.Context, input any) decodex.Result[string] {
	str, ok := decodex.AsString(input)
	if !ok {
		return decodex.Err[string](decodex.CodeInvalidType, i18n.T(ctx, i18n.MsgExpectedString, decodex.TypeOf(input)))
	}
	if re := s.opts.Pattern; re != nil && !re.MatchString(str) {
		r := decodex.Err[string](decodex.CodePattern, i18n.T(ctx, i18n.MsgPatternMismatch, s.patternLabel(), str))
		r.Issue.Params = map[string]any{"pattern": re.String()}
		return r
	}
	n := utf8.RuneCountInString(str)
	if minLen := s.opts.MinLength; minLen > 0 && n < minLen {
		r := decodex.Err[string](decodex.CodeTooShort, i18n.T(ctx, i18n.MsgStringTooShort, strconv.Itoa(minLen), str))
		r.Issue.Params = map[string]any{"min": minLen, "got": n}
		return r
	}
	if maxLen := s.opts.MaxLength; maxLen > 0 && n > maxLen {
		r := decodex.Err[string](decodex.CodeTooLong, i18n.T(ctx, i18n.MsgStringTooLong, strconv.Itoa(maxLen), str))
		r.Issue.Params = map[string]any{"max": maxLen, "got": n}
		return r
	}
	return decodex.Ok(str)
}

func (s *StringDecoder) patternLabel() string {
	if s.opts.PatternName != "" {
		return s.opts.PatternName
	}
	return "/" + s.opts.Pattern.String() + "/"
}

func (s *StringDecoder) SafeParse(input any) decodex.Result[string] {
	return s.Decode(context.Background(), input)
}
func (s *StringDecoder) Parse(input any) (string, error) { return s.SafeParse(input).Unwrap() }
func (s *StringDecoder) IsOptional() bool                { return false }
func (s *StringDecoder) String() string                  { return "string" }

func (s *StringDecoder) JSONSchema() *js.Schema {
	out := &js.Schema{Type: "string", Format: s.format}
	if s.opts.MinLength > 0 {
		out.MinLength = js.Int(s.opts.MinLength)
	}
	if s.opts.MaxLength > 0 {
		out.MaxLength = js.Int(s.opts.MaxLength)
	}
	if s.opts.Pattern != nil {
		out.Pattern = s.opts.Pattern.String()
	}
	return out
}
