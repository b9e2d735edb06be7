package dsl

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/reoring/decodex"
)

// Expr refines d with a CEL expression evaluated against the decoded value,
// bound to the variable "self". The expression must yield a bool; evaluation
// errors count as a rejection.
//
//	Expr(Number(), "self >= 18.0 && self < 150.0")
//	Expr(Object(...), `self.password == self.confirm`, decodex.RefineOpt{Error: "passwords differ"})
func Expr[T any](d decodex.Decoder[T], expression string, opts ...decodex.RefineOpt) (decodex.Decoder[T], error) {
	env, err := cel.NewEnv(cel.Variable("self", cel.DynType))
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expression)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("dsl.Expr: compile %q: %w", expression, iss.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("dsl.Expr: %q yields %s, want bool", expression, out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("dsl.Expr: program %q: %w", expression, err)
	}
	pred := func(v T) bool {
		out, _, err := prg.Eval(map[string]any{"self": v})
		if err != nil {
			return false
		}
		b, ok := out.Value().(bool)
		return ok && b
	}
	return decodex.Refine(d, pred, opts...), nil
}

// MustExpr is like Expr but panics on an invalid expression.
func MustExpr[T any](d decodex.Decoder[T], expression string, opts ...decodex.RefineOpt) decodex.Decoder[T] {
	out, err := Expr(d, expression, opts...)
	if err != nil {
		panic(err)
	}
	return out
}
