package decodex

import (
	"strconv"
	"strings"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// FieldSegment renders a field name as a JSON Pointer segment, escaping
// '~' -> '~0' and '/' -> '~1' per RFC6901.
func FieldSegment(name string) string { return pointerEscaper.Replace(name) }

// IndexSegment renders an array index as a JSON Pointer segment.
func IndexSegment(i int) string { return strconv.Itoa(i) }

// joinPointer prefixes a child pointer with one already-escaped segment.
func joinPointer(seg, child string) string {
	base := "/" + seg
	switch {
	case child == "" || child == "/":
		return base
	case child[0] == '/':
		return base + child
	default:
		return base + "/" + child
	}
}
