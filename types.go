package decodex

import "log/slog"

// ParseOpt bundles per-parse options for the root entry points.
type ParseOpt struct {
	// MaxDepth bounds structural nesting. Zero means DefaultMaxDepth; negative
	// disables the limit.
	MaxDepth int `env:"MAX_DEPTH"`
	// MaxBytes caps the input size read by ParseReader. Zero means unlimited.
	MaxBytes int64 `env:"MAX_BYTES"`
	// Language selects the message language ("en", "ja"). Empty keeps the
	// process default set with i18n.SetLanguage.
	Language string `env:"LANG"`
	// Logger receives decode diagnostics at Debug level.
	Logger *slog.Logger
}
