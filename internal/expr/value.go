// Package expr evaluates effect amounts and conditions written as
// ${ expression } strings against the current attribute values.
package expr

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Value represents a configuration value that may contain an expression.
// It can be:
//   - A literal (number or bool) with no expression
//   - A full expression: entire value is ${ expr }
type Value struct {
	raw     any         // Original value from YAML
	program *vm.Program // Non-nil for full expressions
}

// NewValue creates a Value from a raw YAML value.
func NewValue(raw any) (*Value, error) {
	v := &Value{raw: raw}

	switch r := raw.(type) {
	case int, int64, float64, bool:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(r)
		if trimmed == "" {
			return v, nil
		}
		if !strings.HasPrefix(trimmed, "${") || !strings.HasSuffix(trimmed, "}") {
			return nil, fmt.Errorf("expected number or ${ expression }, got %q", r)
		}
		inner := strings.TrimSpace(trimmed[2 : len(trimmed)-1])
		if inner == "" {
			return nil, fmt.Errorf("empty expression in %q", r)
		}
		program, err := expr.Compile(inner, CompileOptions()...)
		if err != nil {
			return nil, fmt.Errorf("invalid expression %q: %w", inner, err)
		}
		v.program = program
		return v, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", raw)
}

// IsLiteral returns true if this value contains no expression.
func (v *Value) IsLiteral() bool {
	return v.program == nil
}

// Resolve evaluates the expression, if any, against the given context.
func (v *Value) Resolve(ctx *Context) (any, error) {
	if v.program != nil {
		return expr.Run(v.program, ctx)
	}
	return v.raw, nil
}

// ResolveNumber evaluates v and requires a numeric result.
func (v *Value) ResolveNumber(ctx *Context) (float64, error) {
	result, err := v.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	f, err := toFloat(result)
	if err != nil {
		return 0, fmt.Errorf("amount %s: %w", v, err)
	}
	return f, nil
}

// ResolveCondition evaluates a when expression and returns whether
// the effect should apply.
//
// Rules:
//   - nil or literal empty string → always apply (return true)
//   - expression must evaluate to bool
//   - non-bool result is an error
func ResolveCondition(when *Value, ctx *Context) (bool, error) {
	if when == nil {
		return true, nil
	}
	if s, ok := when.raw.(string); ok && when.IsLiteral() && strings.TrimSpace(s) == "" {
		return true, nil
	}

	result, err := when.Resolve(ctx)
	if err != nil {
		return false, err
	}

	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition must evaluate to bool, got %T", result)
	}
	return b, nil
}

// String returns a string representation for debugging.
func (v *Value) String() string {
	if v.program != nil {
		return fmt.Sprintf("Expr(%v)", v.raw)
	}
	return fmt.Sprintf("Literal(%v)", v.raw)
}
