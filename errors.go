package decodex

import (
	"errors"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownKey     = "unknown_key"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodePattern        = "pattern"
	CodeInvalidEnum    = "invalid_enum"
	CodeInvalidLiteral = "invalid_literal"
	CodeInvalidUnion   = "invalid_union"
	CodeInvalidFormat  = "invalid_format"
	CodeParseError     = "parse_error"
	CodeCustom         = "custom"
	// Hardening limits
	CodeTooDeep   = "too_deep"
	CodeTruncated = "truncated"
)

// Issue represents a single validation failure.
type Issue struct {
	Path    string // JSON Pointer of the failing node (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string // Human-readable, already path-annotated ("items -> array [2] -> ...").
	// Params carries structured parameters (e.g., {"min":1, "got":"abc"}) for
	// observability; it never affects Message.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
// Decoders stop at the first failure, so Parse always returns exactly one.
type Issues []Issue

// Error joins the issue messages. A single issue renders as its message verbatim.
func (iss Issues) Error() string {
	switch len(iss) {
	case 0:
		return ""
	case 1:
		return iss[0].Message
	}
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(it.Message)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
