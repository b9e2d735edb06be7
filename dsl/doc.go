// Package dsl provides the decoder constructors for decodex.
//
// Overview
//   - Primitives: String()/Number()/Int()/Boolean()/Literal(v)/Enumerate(values...).
//   - Formats: Email()/UUID()/UUIDValue()/Date() are strings with fixed patterns or conversions.
//   - Structures: Array(elem), Object(Field(...)...), Record(key, value)/Dictionary(value), Union(alts...).
//   - Optional(d): lets an object field be missing; falsy inputs count as absent.
//   - Any(d): erases Decoder[T] to Decoder[any] for heterogeneous unions.
//   - Bind[T](object): binds a decoded object to a struct.
//   - Expr(d, "cel expression"): refinement written in CEL over the variable "self".
//
// Every constructor returns an immutable decoder. Builder methods (Min, Max,
// Pattern, DisallowUnknownFields, Extend, Exclude, Include, ...) return copies,
// so a decoder can be shared between goroutines and reused as a base.
//
// Messages
//
// Failures carry one Issue. Its Message is path-annotated the same way at every
// level: array elements as "array [i] -> ...", object fields as "name -> ...",
// record entries as "Failed to decode record key 'k' -> ..." or
// "Failed to decode record value for key 'k' -> ...". Path holds the matching
// JSON Pointer ("/items/2/price").
//
// File layout (roles)
//   - string.go, number.go, primitives.go, enum.go, formats.go: leaf decoders.
//   - optional.go: the Optional wrapper.
//   - array.go, object_core.go, record.go, union.go: structural decoders.
//   - adapter.go: AnyAdapter (type erasure).
//   - bind.go, expr.go: typed binding and CEL refinement.
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/reoring/decodex"
//	    g "github.com/reoring/decodex/dsl"
//	)
//
//	type User struct {
//	    Name  string   `json:"name"`
//	    Email string   `json:"email"`
//	    Age   *float64 `json:"age,omitempty"`
//	}
//
//	func main() {
//	    user := g.Bind[User](g.Object(
//	        g.Field("name", g.String().Min(1)),
//	        g.Field("email", g.Email()),
//	        g.Field("age", g.Optional(g.Number().Min(0))),
//	    ).DisallowUnknownFields())
//
//	    u, err := decodex.ParseJSON(context.Background(), user, []byte(`{"name":"Ann","email":"ann@example.com"}`))
//	    if err != nil {
//	        fmt.Println(err) // e.g. email -> Input string does not match pattern "email", got "..."
//	        return
//	    }
//	    fmt.Println(u.Name)
//	}
package dsl
