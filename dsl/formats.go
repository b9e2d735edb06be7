package dsl

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reoring/decodex"
	"github.com/reoring/decodex/i18n"
)

var (
	emailRE = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)+$`)
	uuidRE  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// Email returns a string decoder for e-mail addresses.
func Email() *StringDecoder {
	return newString(StringOptions{Pattern: emailRE, PatternName: "email"}, "email")
}

// UUID returns a string decoder for hyphenated UUIDs.
func UUID() *StringDecoder {
	return newString(StringOptions{Pattern: uuidRE, PatternName: "UUID"}, "uuid")
}

// UUIDValue is UUID converted to uuid.UUID.
func UUIDValue() decodex.Decoder[uuid.UUID] {
	return decodex.Transform[string](UUID(), uuid.MustParse)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// toDate returns the zero time when s matches no known layout.
func toDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Date returns a decoder turning date strings into time.Time. Accepted forms
// are RFC 3339, "2006-01-02", "2006-01-02 15:04:05", RFC 1123 and a few
// written-out layouts.
func Date() decodex.Decoder[time.Time] {
	return decodex.Refine(
		decodex.Transform[string](String(), toDate),
		func(t time.Time) bool { return !t.IsZero() },
		decodex.RefineOpt{Error: i18n.MsgInvalidDate, Code: decodex.CodeInvalidFormat},
	)
}
