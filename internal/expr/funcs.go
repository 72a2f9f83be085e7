package expr

import (
	"fmt"

	"clampvar/internal/attribute"
	"clampvar/internal/util"

	"github.com/expr-lang/expr"
)

// CompileOptions returns expr options with built-in functions registered.
func CompileOptions() []expr.Option {
	return []expr.Option{
		expr.Env(&Context{}),
		expr.Function("limit", limitFunc),
		expr.Function("minOf", minOfFunc,
			new(func(string) float64),
		),
		expr.Function("maxOf", maxOfFunc,
			new(func(string) float64),
		),
	}
}

// limit clamps a number to an inclusive range.
// Usage: limit(health * 2, 0, 50)
func limitFunc(params ...any) (any, error) {
	if len(params) != 3 {
		return nil, fmt.Errorf("limit: expected 3 arguments, got %d", len(params))
	}
	var args [3]float64
	for i, p := range params {
		f, err := toFloat(p)
		if err != nil {
			return nil, fmt.Errorf("limit: argument %d: %w", i+1, err)
		}
		args[i] = f
	}
	if !(args[2] > args[1]) {
		return nil, fmt.Errorf("limit: max %v must be greater than min %v", args[2], args[1])
	}
	return util.Clamp(args[0], args[1], args[2]), nil
}

// minOf returns the lower bound of an attribute.
// Usage: minOf("level")
func minOfFunc(params ...any) (any, error) {
	lo, _, err := boundsOf("minOf", params)
	return lo, err
}

// maxOf returns the upper bound of an attribute.
// Usage: maxOf("health")
func maxOfFunc(params ...any) (any, error) {
	_, hi, err := boundsOf("maxOf", params)
	return hi, err
}

func boundsOf(fn string, params []any) (float64, float64, error) {
	if len(params) != 1 {
		return 0, 0, fmt.Errorf("%s: expected 1 argument, got %d", fn, len(params))
	}
	name, ok := params[0].(string)
	if !ok {
		return 0, 0, fmt.Errorf("%s: expected string, got %T", fn, params[0])
	}
	lo, hi, err := attribute.Bounds(name)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", fn, err)
	}
	return lo, hi, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}
