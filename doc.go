// Package decodex provides:
//
// - Composable decoders that validate untyped input (Go values, JSON or YAML text) and produce typed values
// - A Result algebra: every decode yields either a value or a single path-annotated Issue
// - Transform/Refine/Narrow combinators over any Decoder[T]
// - JSON Schema projection of every decoder (see package jsonschema)
//
// Design policy:
// - Keep the contract (Decoder, Result, Issues, options, entry points) in the root package.
// - Place the decoder constructors under dsl/, the message catalog under i18n/.
// - Decoders are immutable; per-parse settings (depth limit, logger, language) travel in the context.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := dsl.Object(dsl.Field("name", dsl.String()), dsl.Field("age", dsl.Optional(dsl.Int())))
//	v, err := d.Parse(input)
//	v, err = decodex.ParseJSON(ctx, d, data, decodex.ParseOpt{MaxDepth: 32})
//	v, err = decodex.ParseYAML(ctx, d, data)
//
//	opt, err := decodex.LoadOptions() // DECODEX_MAX_DEPTH, DECODEX_MAX_BYTES, DECODEX_LANG
//	v, err = decodex.ParseReader(ctx, d, r, opt)
package decodex
