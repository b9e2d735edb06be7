package decodex

import "fmt"

// Result is the outcome of a decode: either a value or a single Issue.
// Exactly one of the two is meaningful; Issue == nil means success.
type Result[T any] struct {
	Value T
	Issue *Issue
}

// Ok wraps a successfully decoded value.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Err builds a failed Result rooted at "/".
func Err[T any](code, message string) Result[T] {
	return Result[T]{Issue: &Issue{Path: "/", Code: code, Message: message}}
}

// Errf is Err with a format string.
func Errf[T any](code, format string, args ...any) Result[T] {
	return Err[T](code, fmt.Sprintf(format, args...))
}

// Fail converts a failed Result of one type into another, keeping the Issue.
// It must only be called on failures.
func Fail[U, T any](r Result[T]) Result[U] { return Result[U]{Issue: r.Issue} }

// Success reports whether the Result carries a value.
func (r Result[T]) Success() bool { return r.Issue == nil }

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.Issue == nil {
		return ""
	}
	return r.Issue.Message
}

// Unwrap returns the value, or Issues holding the failure.
func (r Result[T]) Unwrap() (T, error) {
	if r.Issue != nil {
		var zero T
		return zero, Issues{*r.Issue}
	}
	return r.Value, nil
}

// Rebase moves a failure under a child position: seg is an escaped JSON
// Pointer segment and prefix is joined to the message with " -> ".
func Rebase[U, T any](r Result[T], seg, prefix string) Result[U] {
	if r.Issue == nil {
		panic("decodex: Rebase on a successful result")
	}
	it := *r.Issue
	it.Path = joinPointer(seg, it.Path)
	it.Message = prefix + " -> " + it.Message
	return Result[U]{Issue: &it}
}
