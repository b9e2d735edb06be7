package decodex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/decodex/i18n"
)

// Decode is the primary entry point. It applies opts to ctx and delegates
// validation to d. Failures are logged at Debug level on the context logger.
func Decode[T any](ctx context.Context, d Decoder[T], input any, opts ...ParseOpt) Result[T] {
	if d == nil {
		return Err[T](CodeParseError, "nil decoder")
	}
	ctx = applyParseOpt(ctx, lastOpt(opts))
	r := d.Decode(ctx, input)
	if !r.Success() {
		Logger(ctx).LogAttrs(ctx, slog.LevelDebug, "decode failed",
			slog.String("decoder", d.String()),
			slog.String("code", r.Issue.Code),
			slog.String("path", r.Issue.Path),
			slog.String("error", r.Issue.Message),
		)
	}
	return r
}

// Parse is Decode returning Issues on failure.
func Parse[T any](ctx context.Context, d Decoder[T], input any, opts ...ParseOpt) (T, error) {
	return Decode(ctx, d, input, opts...).Unwrap()
}

// ParseJSON decodes a whole JSON document with the current JSONDriver and
// validates the result with d.
func ParseJSON[T any](ctx context.Context, d Decoder[T], data []byte, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	var v any
	if err := CurrentJSONDriver().Unmarshal(data, &v); err != nil {
		return malformed[T](applyParseOpt(ctx, opt), err)
	}
	return Parse(ctx, d, v, opts...)
}

// ParseReader reads a JSON document from r. When MaxBytes is set the size cap
// is enforced before decoding.
func ParseReader[T any](ctx context.Context, d Decoder[T], r io.Reader, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return malformed[T](applyParseOpt(ctx, opt), err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		var zero T
		lctx := applyParseOpt(ctx, opt)
		return zero, Issues{{
			Path:    "/",
			Code:    CodeTruncated,
			Message: i18n.T(lctx, i18n.MsgMaxBytes, strconv.FormatInt(opt.MaxBytes, 10)),
			Params:  map[string]any{"max": opt.MaxBytes},
		}}
	}
	return ParseJSON(ctx, d, data, opts...)
}

// ParseYAML decodes a YAML document and validates the result with d. Mapping
// keys are normalized to strings so objects and records see JSON-like input.
func ParseYAML[T any](ctx context.Context, d Decoder[T], data []byte, opts ...ParseOpt) (T, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return malformed[T](applyParseOpt(ctx, lastOpt(opts)), err)
	}
	return Parse(ctx, d, normalizeYAML(v), opts...)
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	}
	return v
}

// ---- helpers ----

func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func applyParseOpt(ctx context.Context, opt ParseOpt) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if opt.MaxDepth != 0 {
		ctx = WithMaxDepth(ctx, opt.MaxDepth)
	}
	if opt.Logger != nil {
		ctx = WithLogger(ctx, opt.Logger)
	}
	if opt.Language != "" {
		ctx = i18n.WithLanguage(ctx, opt.Language)
	}
	return ctx
}

func malformed[T any](ctx context.Context, err error) (T, error) {
	var zero T
	return zero, Issues{{
		Path:    "/",
		Code:    CodeParseError,
		Message: i18n.T(ctx, i18n.MsgMalformedDocument, err.Error()),
	}}
}
